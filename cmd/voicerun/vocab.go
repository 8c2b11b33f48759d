package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the configured keywords",
	Long: `Shows the keywords of every configured language. The active language is
marked with *. Jump wins over stop, and stop over move, when a phrase
contains keywords of several commands.`,
	Args: cobra.NoArgs,
	Run:  runVocab,
}

func runVocab(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	languages := make([]string, 0, len(cfg.Voice.Vocabularies))
	for lang := range cfg.Voice.Vocabularies {
		languages = append(languages, lang)
	}
	slices.Sort(languages)

	if len(languages) == 0 {
		fmt.Println("No vocabularies configured.")
		return
	}

	fmt.Println("Vocabularies:")
	fmt.Println()

	for _, lang := range languages {
		v := cfg.Voice.Vocabularies[lang]
		marker := " "
		if lang == cfg.Voice.Language {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, lang)
		fmt.Printf("    %-5s  %s\n", "jump", strings.Join(v.Jump, ", "))
		fmt.Printf("    %-5s  %s\n", "stop", strings.Join(v.Stop, ", "))
		fmt.Printf("    %-5s  %s\n", "move", strings.Join(v.Move, ", "))
	}

	fmt.Println()
	fmt.Printf("Model: %s\n", cfg.Voice.ModelPath)
	fmt.Println("Set VOICERUN_LANGUAGE to switch languages.")
}
