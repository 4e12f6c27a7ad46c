package family

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameOrder returns the comparison used to sort names for printing.
// An empty locale means plain byte order; otherwise names are collated for that BCP 47 tag.
func NameOrder(locale string) (func(a, b string) int, error) {
	if strings.TrimSpace(locale) == "" {
		return strings.Compare, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("sort locale %q: %w", locale, err)
	}
	c := collate.New(tag)
	return c.CompareString, nil
}
