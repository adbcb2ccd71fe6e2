// file: internals/features/finance/fees/schedule_test.go
package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFees_JHSGrades(t *testing.T) {
	// Grades 7-10 share one JHS schedule: 11,850 tuition + 4,680
	// standard + 220 non-standard = 16,750 pesos total.
	for _, level := range []string{"7", "8", "9", "10", "Grade 7", "grade 10"} {
		b := ResolveFees(level)
		require.NotNilf(t, b, "grade level %q should resolve", level)
		assert.Equal(t, CategoryJHS, b.Category)
		assert.Equal(t, int64(1_185_000), b.TuitionCentavos)
		assert.Equal(t, int64(1_675_000), b.Total(), "grade level %q", level)
	}
}

func TestResolveFees_SHSGrades(t *testing.T) {
	for _, level := range []string{"11", "12", "Grade 11", "Grade 12"} {
		b := ResolveFees(level)
		require.NotNilf(t, b, "grade level %q should resolve", level)
		assert.Equal(t, CategorySHS, b.Category)
		assert.Equal(t, int64(1_450_000), b.TuitionCentavos)
		assert.Equal(t, shsSchedule.Total(), b.Total())
	}
}

func TestResolveFees_NoSchedule(t *testing.T) {
	for _, level := range []string{"Kindergarten", "Pre-K", "6", "13", "", "Grade"} {
		assert.Nilf(t, ResolveFees(level), "grade level %q carries no schedule", level)
	}
}

func TestResolveFees_Deterministic(t *testing.T) {
	a := ResolveFees("8")
	b := ResolveFees("8")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a, b)

	// Returned schedule is a copy; callers mutating it must not
	// bleed into later resolutions.
	a.Standard["Books and Modules"] = 0
	c := ResolveFees("8")
	assert.Equal(t, int64(250_000), c.Standard["Books and Modules"])
}

func TestFeeBreakdown_LineItems(t *testing.T) {
	b := ResolveFees("9")
	require.NotNil(t, b)

	items := b.LineItems()
	assert.Equal(t, b.TuitionCentavos, items[LineItemTuition])
	assert.Len(t, items, 1+len(b.Standard)+len(b.NonStandard))

	var sum int64
	for _, v := range items {
		sum += v
	}
	assert.Equal(t, b.Total(), sum)
}
