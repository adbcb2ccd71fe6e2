// file: internals/helpers/money.go
package helper

import (
	"fmt"
	"strings"
)

// FormatPeso renders integer centavos as a display amount, e.g.
// 1675000 -> "₱16,750.00". Internal arithmetic stays in centavos;
// this is presentation only.
func FormatPeso(centavos int64) string {
	neg := centavos < 0
	if neg {
		centavos = -centavos
	}
	pesos := centavos / 100
	cents := centavos % 100

	digits := fmt.Sprintf("%d", pesos)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s₱%s.%02d", sign, b.String(), cents)
}
