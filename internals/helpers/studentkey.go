// file: internals/helpers/studentkey.go
package helper

import (
	"strings"
	"unicode"
)

// BuildStudentKey derives the per-enrollment document key:
// LASTNAME-FIRSTNAME-DOB-SCHOOLYEAR, uppercase ASCII, spaces -> hyphens.
// dob is expected as "2006-01-02"; schoolYear as "2026-2027".
// The key is unique per student per school year.
func BuildStudentKey(lastName, firstName, dob, schoolYear string) string {
	parts := []string{
		normalizeKeyPart(lastName),
		normalizeKeyPart(firstName),
		normalizeKeyPart(dob),
		normalizeKeyPart(schoolYear),
	}
	return strings.Join(parts, "-")
}

func normalizeKeyPart(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		default:
			// non-ASCII letters (ñ etc.) and punctuation dropped
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
