package amount

import (
	"errors"
	"fmt"
)

// ErrPrecision is returned when a division policy has out-of-range fields.
var ErrPrecision = errors.New("invalid precision")

const (
	// DefaultExtend is the number of digits [DefaultPrecision] keeps beyond
	// twice the scale of the dividend.
	DefaultExtend = 6
	// DefaultMaxScale is the largest scale [DefaultPrecision] lets a
	// quotient grow to.
	DefaultMaxScale = 1000
)

// Precision is the policy that chooses the scale of a quotient.
//
// The quotient of amounts with scales sa and sb has scale
//
//	s = max(min(2*sa + Extend, MaxScale), sa + sb)
//
// and its digits beyond s are truncated toward zero, never rounded.
// Repeated division therefore grows the scale of a running value until
// MaxScale caps it, while a quotient is always at least as precise as the
// product of its operands.
type Precision struct {
	Extend   int // digits kept beyond twice the dividend scale
	MaxScale int // cap on the growth of the quotient scale
}

// DefaultPrecision returns the policy used by [Amount.Quo]:
// Extend = [DefaultExtend], MaxScale = [DefaultMaxScale].
func DefaultPrecision() Precision {
	return Precision{Extend: DefaultExtend, MaxScale: DefaultMaxScale}
}

// Validate returns an error if Extend is negative or MaxScale is negative or
// greater than [MaxScale].
func (p Precision) Validate() error {
	switch {
	case p.Extend < 0:
		return fmt.Errorf("%w: negative extend %v", ErrPrecision, p.Extend)
	case p.Extend > MaxScale:
		return fmt.Errorf("%w: extend %v exceeds %v", ErrPrecision, p.Extend, MaxScale)
	case p.MaxScale < 0:
		return fmt.Errorf("%w: negative max scale %v", ErrPrecision, p.MaxScale)
	case p.MaxScale > MaxScale:
		return fmt.Errorf("%w: max scale %v exceeds %v", ErrPrecision, p.MaxScale, MaxScale)
	}
	return nil
}

// scale returns the scale of the quotient of amounts with scales sa and sb.
func (p Precision) scale(sa, sb int) int {
	return max(min(2*sa+p.Extend, p.MaxScale), sa+sb)
}

// Quo returns the truncated quotient of amounts a and b computed with
// [DefaultPrecision].
// Dividing by 1 or -1 returns the dividend (negated for -1) at its own scale,
// and dividing an amount by an equal amount returns exactly 1.
// See also methods [Amount.QuoPrec], [Amount.QuoRem], and [Amount.Split].
//
// Quo returns an error if the divisor is 0.
func (a Amount) Quo(b Amount) (Amount, error) {
	c, err := a.quo(b, DefaultPrecision())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return c, nil
}

// QuoPrec is like [Amount.Quo] but uses the given division policy.
//
// QuoPrec returns an error if:
//   - the divisor is 0;
//   - the policy is not valid, see [Precision.Validate].
func (a Amount) QuoPrec(b Amount, p Precision) (Amount, error) {
	if err := p.Validate(); err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	c, err := a.quo(b, p)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) quo(b Amount, p Precision) (Amount, error) {
	// Special cases
	switch {
	case b.IsZero():
		return Amount{}, ErrDivisionByZero
	case b.IsOne():
		if b.IsNeg() {
			return a.Neg(), nil
		}
		return a, nil
	case a.Equal(b):
		return New(1), nil
	}

	// General case
	scale := p.scale(a.scale, b.scale)
	x := a.num.MulPow10(scale - a.scale + b.scale)
	q, _, err := x.QuoRem(b.num)
	if err != nil {
		return Amount{}, ErrDivisionByZero
	}
	return newAmountUnsafe(q, scale), nil
}
