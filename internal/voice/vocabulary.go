package voice

import (
	"strings"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
)

// Vocabulary maps keywords to commands for one language.
type Vocabulary struct {
	Jump []string
	Stop []string
	Move []string
}

// NewVocabulary builds a vocabulary from config, lower-casing every keyword
// and dropping empty ones.
func NewVocabulary(cfg config.Vocabulary) Vocabulary {
	return Vocabulary{
		Jump: normalize(cfg.Jump),
		Stop: normalize(cfg.Stop),
		Move: normalize(cfg.Move),
	}
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Match finds the command named in text. Keywords match as case-insensitive
// substrings; jump is checked first, then stop, then move, and only the first
// matching group counts.
func (v Vocabulary) Match(text string) (command.Command, bool) {
	text = strings.ToLower(text)
	if text == "" {
		return 0, false
	}

	switch {
	case containsAny(text, v.Jump):
		return command.Jump, true
	case containsAny(text, v.Stop):
		return command.Stop, true
	case containsAny(text, v.Move):
		return command.Move, true
	}
	return 0, false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
