// Package format holds small display-formatting helpers.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// LargeNumber abbreviates a numeric magnitude for display: values of at
// least 1e9, 1e6 or 1e3 in absolute value become "{v/1e9:.1f}B",
// "{v/1e6:.1f}M" or "{v/1e3:.1f}K". Smaller values are rendered in their
// shortest exact decimal form, so 999 stays "999" while 999.5 stays
// "999.5" - the integer/float distinction is deliberately preserved.
func LargeNumber(num float64) string {
	switch {
	case math.Abs(num) >= 1e9:
		return fmt.Sprintf("%.1fB", num/1e9)
	case math.Abs(num) >= 1e6:
		return fmt.Sprintf("%.1fM", num/1e6)
	case math.Abs(num) >= 1e3:
		return fmt.Sprintf("%.1fK", num/1e3)
	default:
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
}
