package calculation

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures one string per record for assertions on the
// diagnostic side-channel.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }

func TestAdd(t *testing.T) {
	calc := New(nil)

	assert.Equal(t, 5.0, calc.Add(2, 3))
	assert.Equal(t, 0.0, calc.Add(0, 0))
	assert.Equal(t, -5.0, calc.Add(-2, -3))
	assert.Equal(t, 5.0, calc.Add(10, -5))

	// Raw IEEE-754 semantics, no rounding. The expected sum must be
	// computed in float64 variables: the constant expression 0.1+0.2 is
	// evaluated exactly and rounded once, which is a different value.
	a, b := 0.1, 0.2
	assert.Equal(t, a+b, calc.Add(a, b))
	assert.Equal(t, 0.30000000000000004, calc.Add(a, b))
	assert.InDelta(t, 0.3, calc.Add(a, b), 1e-10)
}

func TestSubtract(t *testing.T) {
	calc := New(nil)

	assert.Equal(t, 2.0, calc.Subtract(5, 3))
	assert.Equal(t, -2.0, calc.Subtract(3, 5))
	assert.Equal(t, -5.0, calc.Subtract(0, 5))
}

func TestMultiply(t *testing.T) {
	calc := New(nil)

	assert.Equal(t, 12.0, calc.Multiply(3, 4))
	assert.Equal(t, 0.0, calc.Multiply(5, 0))
	assert.Equal(t, -6.0, calc.Multiply(-2, 3))
	assert.Equal(t, 6.0, calc.Multiply(-2, -3))
}

func TestDivide(t *testing.T) {
	calc := New(nil)

	q, err := calc.Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, q)

	q, err = calc.Divide(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, q)

	q, err = calc.Divide(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.3333333333, q, 1e-9)
}

func TestDivide_ByZero(t *testing.T) {
	calc := New(nil)

	_, err := calc.Divide(5, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot divide by zero")

	var dbz *DivisionByZeroError
	require.True(t, errors.As(err, &dbz))
	assert.Equal(t, 5.0, dbz.Numerator)
	assert.Equal(t, 0.0, dbz.Denominator)
}

func TestDivide_NearZeroDenominator(t *testing.T) {
	calc := New(nil)

	// Below the 1e-10 threshold the denominator counts as zero.
	_, err := calc.Divide(1, 1e-11)
	assert.Error(t, err)

	_, err = calc.Divide(1, -1e-11)
	assert.Error(t, err)

	// At the threshold it does not.
	q, err := calc.Divide(1, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 1e10, q)
}

func TestPower(t *testing.T) {
	calc := New(nil)

	assert.Equal(t, 1.0, calc.Power(2, 0))
	assert.Equal(t, 2.0, calc.Power(2, 1))
	assert.Equal(t, 1024.0, calc.Power(2, 10))
	assert.Equal(t, 4.0, calc.Power(-2, 2))
	assert.Equal(t, -8.0, calc.Power(-2, 3))
	assert.InDelta(t, 2.25, calc.Power(1.5, 2), 1e-10)
}

func TestPower_NegativeExponent(t *testing.T) {
	logger := &recordingLogger{}
	calc := New(logger)

	assert.Equal(t, 0.25, calc.Power(2, -2))
	assert.Contains(t, logger.lines, "WARN Negative exponent - may lose precision")
}

func TestLastResult_InitiallyNaN(t *testing.T) {
	calc := New(nil)
	assert.True(t, math.IsNaN(calc.LastResult()))
}

func TestLastResult_TracksEveryOperation(t *testing.T) {
	calc := New(nil)

	calc.Add(10, 5)
	assert.Equal(t, 15.0, calc.LastResult())

	calc.Multiply(3, 7)
	assert.Equal(t, 21.0, calc.LastResult())
}

func TestLastResult_UnchangedByFailedDivide(t *testing.T) {
	calc := New(nil)

	calc.Add(1, 1)
	_, err := calc.Divide(5, 0)
	require.Error(t, err)
	assert.Equal(t, 2.0, calc.LastResult())
}

func TestChainedOperations(t *testing.T) {
	calc := New(nil)

	a := calc.Add(5, 3)
	b := calc.Multiply(a, 2)
	c, err := calc.Divide(b, 4)
	require.NoError(t, err)
	d := calc.Subtract(c, 1)

	assert.Equal(t, 3.0, d)
	assert.Equal(t, 3.0, calc.LastResult())
}

func TestIndependentInstances(t *testing.T) {
	calc1 := New(nil)
	calc2 := New(nil)

	calc1.Add(1, 1)
	assert.True(t, math.IsNaN(calc2.LastResult()))
}

func TestLogging_SideChannel(t *testing.T) {
	logger := &recordingLogger{}
	calc := New(logger)

	calc.Add(2, 3)
	assert.Equal(t, []string{
		"INFO Calculating: 2 + 3",
		"DEBUG Result: 5",
	}, logger.lines)

	logger.lines = nil
	_, err := calc.Divide(1, 0)
	require.Error(t, err)
	assert.Equal(t, []string{
		"INFO Calculating: 1 / 0",
		"ERROR Division by zero attempted!",
	}, logger.lines)

	logger.lines = nil
	calc.LastResult()
	assert.Equal(t, []string{"DEBUG Retrieving last result"}, logger.lines)
}
