package repl

import (
	"strings"

	"github.com/gyaneshwarpardhi/familytree/internal/config"
	"github.com/gyaneshwarpardhi/familytree/internal/family"
)

// Settings are the display knobs a Session reads before every command.
type Settings struct {
	Indent  int
	Prompt  string
	Compare func(a, b string) int
}

// DefaultSettings matches config.Default().
func DefaultSettings() *Settings {
	return &Settings{Indent: family.DefaultIndent, Prompt: " ", Compare: strings.Compare}
}

// SettingsFrom builds Settings from a validated config.
func SettingsFrom(cfg *config.Config) (*Settings, error) {
	cmp, err := family.NameOrder(cfg.Display.SortLocale)
	if err != nil {
		return nil, err
	}
	return &Settings{
		Indent:  cfg.Display.Indent,
		Prompt:  cfg.Display.Prompt,
		Compare: cmp,
	}, nil
}
