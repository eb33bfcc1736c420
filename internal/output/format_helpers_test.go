package output

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "15.00", FormatNumber(15, 2))
	assert.Equal(t, "3.14", FormatNumber(3.14159, 2))
	assert.Equal(t, "1024", FormatNumber(1024, 0))
	assert.Equal(t, "-8.000", FormatNumber(-8, 3))
	assert.Equal(t, "0.25", FormatNumber(0.25, 2))
}

func TestFormatNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", FormatNumber(math.NaN(), 2))
	assert.Equal(t, "+Inf", FormatNumber(math.Inf(1), 2))
	assert.Equal(t, "-Inf", FormatNumber(math.Inf(-1), 2))
}
