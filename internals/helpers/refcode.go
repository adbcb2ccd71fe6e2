// file: internals/helpers/refcode.go
package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// Tracking-code alphabet excludes I, O, 0 and 1 to avoid visual
// ambiguity on printed forms.
const refCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const refCodeLength = 6

var refCodePattern = regexp.MustCompile(`^SRCS-\d{4}-[` + refCodeAlphabet + `]{6}$`)

// GenerateReferenceNumber builds the public tracking key for one
// enrollment submission: SRCS-<year>-<6-char code>.
func GenerateReferenceNumber(now time.Time) (string, error) {
	var b strings.Builder
	for i := 0; i < refCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(refCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("reference code: %w", err)
		}
		b.WriteByte(refCodeAlphabet[n.Int64()])
	}
	return fmt.Sprintf("SRCS-%d-%s", now.Year(), b.String()), nil
}

// IsReferenceNumber reports whether s looks like a tracking key we issued.
func IsReferenceNumber(s string) bool {
	return refCodePattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeReferenceNumber uppercases and trims a user-typed tracking key.
func NormalizeReferenceNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
