package calculation

import (
	"fmt"
	"math"
)

// divisionEpsilon is the magnitude below which a denominator is treated
// as zero. Preserved exactly for compatibility with existing callers.
const divisionEpsilon = 1e-10

// DivisionByZeroError reports a Divide call whose denominator is
// numerically indistinguishable from zero.
type DivisionByZeroError struct {
	Numerator   float64
	Denominator float64
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Cannot divide by zero: %g / %g", e.Numerator, e.Denominator)
}

// Calculator evaluates basic arithmetic and remembers the most recent
// successful result. A Calculator is not safe for concurrent use;
// callers sharing one across goroutines must serialize access.
type Calculator struct {
	logger     Logger
	lastResult float64
}

// New creates a calculator with no prior result (LastResult reports
// NaN until an operation completes). A nil logger disables diagnostics.
func New(logger Logger) *Calculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Calculator{
		logger:     logger,
		lastResult: math.NaN(),
	}
}

// Add returns a + b.
func (c *Calculator) Add(a, b float64) float64 {
	c.logger.Infof("Calculating: %g + %g", a, b)
	c.lastResult = a + b
	c.logger.Debugf("Result: %g", c.lastResult)
	return c.lastResult
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b float64) float64 {
	c.logger.Infof("Calculating: %g - %g", a, b)
	c.lastResult = a - b
	c.logger.Debugf("Result: %g", c.lastResult)
	return c.lastResult
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b float64) float64 {
	c.logger.Infof("Calculating: %g * %g", a, b)
	c.lastResult = a * b
	c.logger.Debugf("Result: %g", c.lastResult)
	return c.lastResult
}

// Divide returns a / b. Denominators with magnitude below 1e-10 fail
// with a *DivisionByZeroError and leave the last result untouched.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	c.logger.Infof("Calculating: %g / %g", a, b)

	if math.Abs(b) < divisionEpsilon {
		c.logger.Errorf("Division by zero attempted!")
		return 0, &DivisionByZeroError{Numerator: a, Denominator: b}
	}

	c.lastResult = a / b
	c.logger.Debugf("Result: %g", c.lastResult)
	return c.lastResult, nil
}

// Power returns base raised to exp. Negative exponents are permitted
// and computed with floating-point exponentiation, which may lose
// precision.
func (c *Calculator) Power(base float64, exp int32) float64 {
	c.logger.Infof("Calculating: %g^%d", base, exp)

	if exp < 0 {
		c.logger.Warnf("Negative exponent - may lose precision")
	}

	c.lastResult = math.Pow(base, float64(exp))
	c.logger.Debugf("Result: %g", c.lastResult)
	return c.lastResult
}

// LastResult returns the most recently computed value without
// changing it, or NaN when no operation has completed yet.
func (c *Calculator) LastResult() float64 {
	c.logger.Debugf("Retrieving last result")
	return c.lastResult
}
