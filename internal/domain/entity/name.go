package entity

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// titleCaser capitalizes each word; language.Und avoids locale-specific casing
var titleCaser = cases.Title(language.Und)

// combiningMarkRemover drops the combining marks left over after NFKD
// decomposition, so "Amína" and "Amina" normalize to the same key
var combiningMarkRemover = runes.Remove(runes.In(unicode.Mn))

// stripDiacritics folds accented characters to their base letters
func stripDiacritics(s string) string {
	return norm.NFC.String(combiningMarkRemover.String(norm.NFKD.String(s)))
}

// SanitizeDisplayName strips control and numeric characters from a submitted
// first name, collapses whitespace, and title-cases each word.
// Fails with ErrInvalidName if nothing usable remains.
func SanitizeDisplayName(raw string) (string, error) {
	var sb strings.Builder
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '\'':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}

	collapsed := strings.Join(strings.Fields(sb.String()), " ")
	if collapsed == "" {
		return "", fmt.Errorf("%w: empty after sanitization", errs.ErrInvalidName)
	}

	return titleCaser.String(collapsed), nil
}

// NormalizeNameKey computes the global uniqueness key for a supporter:
// diacritics folded, lowercased, everything outside [a-z space hyphen]
// removed, whitespace runs collapsed to single hyphens.
// Fails with ErrInvalidName if the result is empty.
func NormalizeNameKey(displayName string) (string, error) {
	folded := strings.ToLower(stripDiacritics(displayName))

	var sb strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '-' {
			sb.WriteRune(r)
		}
	}

	key := strings.Join(strings.Fields(sb.String()), "-")
	if key == "" {
		return "", fmt.Errorf("%w: empty normalized key", errs.ErrInvalidName)
	}

	return key, nil
}
