// file: internals/helpers/helpers_test.go
package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPeso(t *testing.T) {
	cases := []struct {
		centavos int64
		want     string
	}{
		{0, "₱0.00"},
		{5, "₱0.05"},
		{100, "₱1.00"},
		{1_675_000, "₱16,750.00"},
		{1_153_000, "₱11,530.00"},
		{123_456_789, "₱1,234,567.89"},
		{-22_000, "-₱220.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPeso(tc.centavos))
	}
}

func TestGenerateReferenceNumber(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref, err := GenerateReferenceNumber(now)
		require.NoError(t, err)
		assert.True(t, IsReferenceNumber(ref), "generated %q", ref)
		assert.True(t, strings.HasPrefix(ref, "SRCS-2026-"))

		// no ambiguous characters in the code part
		code := strings.TrimPrefix(ref, "SRCS-2026-")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "1")
		seen[ref] = true
	}
	// 32^6 space: 50 draws colliding would point at a broken generator
	assert.Greater(t, len(seen), 1)
}

func TestIsReferenceNumber(t *testing.T) {
	assert.True(t, IsReferenceNumber("srcs-2026-abcdef"))
	assert.True(t, IsReferenceNumber(" SRCS-2026-XY23ZW "))
	assert.False(t, IsReferenceNumber("SRCS-2026-ABCDE"))  // short code
	assert.False(t, IsReferenceNumber("SRCS-2026-ABCDE0")) // ambiguous char
	assert.False(t, IsReferenceNumber("SRC-2026-ABCDEF"))
}

func TestBuildStudentKey(t *testing.T) {
	key := BuildStudentKey("Dela Cruz", "Juan Miguel", "2012-04-15", "2026-2027")
	assert.Equal(t, "DELA-CRUZ-JUAN-MIGUEL-2012-04-15-2026-2027", key)

	// diacritics and stray punctuation are dropped, casing normalized
	assert.Equal(t,
		BuildStudentKey("dela cruz", "JUAN MIGUEL", "2012-04-15", "2026-2027"),
		key)
	assert.Equal(t, "PEA-MARIA-2011-12-01-2026-2027",
		BuildStudentKey("Peña", "Maria", "2011-12-01", "2026-2027"))
}
