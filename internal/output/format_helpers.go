package output

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatNumber renders a result with a fixed number of decimal places.
// Kept separate from the CLI so it can be unit tested in isolation.
// NaN and infinities have no decimal representation and fall back to
// strconv.
func FormatNumber(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
