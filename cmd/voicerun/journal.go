package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voicerun/internal/platform/tui"
	"github.com/vovakirdan/voicerun/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalPlain bool
	flagJournalPrune int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse recognized commands",
	Long: `Display the commands recognized during past runs, newest first.

Examples:
  voicerun journal
  voicerun journal --limit 100
  voicerun journal --plain
  voicerun journal --prune 1000`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 50, "Number of entries to show")
	journalCmd.Flags().BoolVar(&flagJournalPlain, "plain", false, "Print a plain table instead of the interactive viewer")
	journalCmd.Flags().IntVar(&flagJournalPrune, "prune", -1, "Keep only the newest N entries and exit")
}

func runJournal(_ *cobra.Command, _ []string) {
	journal, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer journal.Close()

	if flagJournalPrune >= 0 {
		n, err := journal.Prune(flagJournalPrune)
		if err != nil {
			journal.Close()
			fail("%v", err)
		}
		fmt.Printf("Removed %d entries.\n", n)
		return
	}

	if flagJournalPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printJournal(journal)
		return
	}

	rt := runtimeConfig()
	if err := tui.RunJournal(journal, flagJournalLimit, rt.ScreenW, rt.ScreenH); err != nil {
		journal.Close()
		fail("%v", err)
	}
}

func printJournal(journal *storage.Journal) {
	entries, err := journal.Recent(flagJournalLimit)
	if err != nil {
		journal.Close()
		fail("%v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No commands recorded yet.")
		fmt.Println()
		fmt.Println("Play 'voicerun play' with voice control to fill the journal.")
		return
	}

	fmt.Printf("  %-19s  %-8s  %-4s  %-4s  %s\n", "Time", "Run", "Lang", "Cmd", "Heard")
	fmt.Printf("  %-19s  %-8s  %-4s  %-4s  %s\n", "----", "---", "----", "---", "-----")
	for _, e := range entries {
		run := e.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-19s  %-8s  %-4s  %-4s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), run, e.Language, e.Command, e.Transcript)
	}
}
