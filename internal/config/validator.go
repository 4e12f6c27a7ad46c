package config

import (
	"fmt"
	"log/slog"
	"net"
	"strings"

	"golang.org/x/text/language"
)

const maxIndent = 16

// Validate checks the config for:
//   - Required fields
//   - Indent within 1..16
//   - A known log level and a parseable sort locale
//   - A host:port metrics address when one is set
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	if cfg.Display.Indent < 1 || cfg.Display.Indent > maxIndent {
		errs = append(errs, fmt.Sprintf("display.indent: %d is outside 1..%d", cfg.Display.Indent, maxIndent))
	}
	if loc := cfg.Display.SortLocale; loc != "" {
		if _, err := language.Parse(loc); err != nil {
			errs = append(errs, fmt.Sprintf("display.sort_locale: %q: %s", loc, err))
		}
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", cfg.Log.Level))
	}
	if addr := cfg.Metrics.Addr; addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			errs = append(errs, fmt.Sprintf("metrics.addr: %s", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
