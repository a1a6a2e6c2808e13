package bigint

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

var (
	// ErrDivByZero is returned when the divisor is zero.
	ErrDivByZero = errors.New("division by zero")
	// ErrTooLarge is returned when a power of ten exceeds [MaxPow10].
	ErrTooLarge = errors.New("integer too large")
)

// MaxPow10 is the largest exponent accepted by [Pow10].
const MaxPow10 = 1_000_000

// Int represents an arbitrary-precision signed integer.
// Its zero value corresponds to 0.
//
// Int is an immutable value type: methods never modify the receiver or
// their arguments, so Int is safe for concurrent use by multiple goroutines.
type Int struct {
	neg bool // sign, false for zero
	abs nat  // magnitude
}

// NewInt returns an integer equal to v.
func NewInt(v int64) Int {
	if v >= 0 {
		return Int{abs: natFromUint64(uint64(v))}
	}
	u := uint64(-(v + 1)) + 1
	return Int{neg: true, abs: natFromUint64(u)}
}

// NewUint returns an integer equal to v.
func NewUint(v uint64) Int {
	return Int{abs: natFromUint64(v)}
}

// NewBool returns 1 if b is true and 0 otherwise.
func NewBool(b bool) Int {
	if b {
		return Int{abs: nat{1}}
	}
	return Int{}
}

// Pow10 returns 10^n.
//
// Pow10 returns an error if n is negative or greater than [MaxPow10].
func Pow10(n int) (Int, error) {
	if n < 0 || n > MaxPow10 {
		return Int{}, fmt.Errorf("computing 10^%v: %w", n, ErrTooLarge)
	}
	return Int{abs: mulPow10(nat{1}, n)}, nil
}

// newInt builds a canonical integer from a sign and a normalized magnitude.
func newInt(neg bool, abs nat) Int {
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg: neg, abs: abs}
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if x = 0.
func (x Int) IsZero() bool {
	return len(x.abs) == 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return !x.neg && len(x.abs) != 0
}

// IsOne returns true if x = -1 or x = 1.
func (x Int) IsOne() bool {
	return len(x.abs) == 1 && x.abs[0] == 1
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return len(x.abs) != 0 && x.abs[0]&1 == 1
}

// Digits returns the number of decimal digits in |x|.
// Digits assumes that 0 has no digits.
func (x Int) Digits() int {
	return x.abs.digits()
}

// TrailingZeros returns the number of trailing zero digits in x.
// TrailingZeros assumes that 0 has no trailing zeros.
func (x Int) TrailingZeros() int {
	return x.abs.trailingZeros()
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.abs)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: x.abs}
}

// Cmp compares integers and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return -cmpNat(x.abs, y.abs)
	default:
		return cmpNat(x.abs, y.abs)
	}
}

// CmpAbs compares absolute values of integers and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| = |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	return cmpNat(x.abs, y.abs)
}

// Equal returns true if x = y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return newInt(x.neg, addNat(x.abs, y.abs))
	}
	switch c := cmpNat(x.abs, y.abs); {
	case c > 0:
		return newInt(x.neg, subNat(x.abs, y.abs))
	case c < 0:
		return newInt(y.neg, subNat(y.abs, x.abs))
	default:
		return Int{}
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, mulNat(x.abs, y.abs))
}

// MulPow10 returns x * 10^n.
// Unlike [Pow10], MulPow10 does not limit n, since the caller already holds
// an operand of comparable size.
//
// MulPow10 panics if n is negative.
func (x Int) MulPow10(n int) Int {
	if n < 0 {
		panic(fmt.Sprintf("%q.MulPow10(%v) failed: negative exponent", x, n))
	}
	return newInt(x.neg, mulPow10(x.abs, n))
}

// QuoPow10 returns x / 10^n truncated toward zero, and reports whether
// the division was exact. Negative n is treated as zero.
func (x Int) QuoPow10(n int) (q Int, exact bool) {
	if n <= 0 {
		return x, true
	}
	abs, exact := quoPow10(x.abs, n)
	return newInt(x.neg, abs), exact
}

// QuoRem returns the quotient q and remainder r of x and y truncated toward
// zero, such that x = y * q + r, |r| < |y|, and r has the sign of x.
//
// QuoRem returns an error if y = 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", x, y, x, y, ErrDivByZero)
	}
	qa, ra := divNat(x.abs, y.abs)
	return newInt(x.neg != y.neg, qa), newInt(x.neg, ra), nil
}

// Quo returns x / y truncated toward zero.
//
// Quo returns an error if y = 0.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder of x / y truncated toward zero.
//
// Rem returns an error if y = 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// Uint64 returns x as uint64.
// If x is negative or does not fit into uint64, then false is returned.
func (x Int) Uint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.abs.uint64()
}

// Int64 returns x as int64.
// If x does not fit into int64, then false is returned.
func (x Int) Int64() (int64, bool) {
	u, ok := x.abs.uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u == 1<<63 {
			return -1 << 63, true
		}
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, false
		}
		return -v, true
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, false
	}
	return v, true
}
