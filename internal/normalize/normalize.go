package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name returns the canonical spelling of a team name: surrounding spaces
// removed and Unicode composed, so visually equal names compare equal.
func Name(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Key folds case on top of Name. Used to compare names loosely.
func Key(name string) string {
	return cases.Fold().String(Name(name))
}
