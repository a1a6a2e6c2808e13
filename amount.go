package amount

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"

	"github.com/hgati/amount/bigint"
)

var (
	// ErrParse indicates that a string does not represent an amount.
	ErrParse = errors.New("invalid amount")
	// ErrDivisionByZero is returned when the divisor is zero.
	// It is the same sentinel as [bigint.ErrDivByZero].
	ErrDivisionByZero = bigint.ErrDivByZero
	// ErrScaleRange is returned when a scale is negative or exceeds [MaxScale].
	ErrScaleRange = errors.New("scale out of range")
)

// MaxScale is the largest scale accepted by constructors and division policies.
const MaxScale = bigint.MaxPow10

// Amount type represents an exact decimal quantity, num / 10^scale, where
// the numerator is an arbitrary-precision integer.
// Its zero value corresponds to 0.
//
// Two amounts with different scales may denote the same value: 1.5 and 1.50
// are equal, and all comparisons are made by value.
// Amount is an immutable value type designed to be safe for concurrent use by
// multiple goroutines. Only the methods with pointer receivers modify an
// amount, and they require exclusive ownership of it.
type Amount struct {
	num   bigint.Int // numerator
	scale int        // digits after the decimal point
}

// Native is the set of Go types that can be lifted to an amount by [New].
type Native interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		bool
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(num bigint.Int, scale int) Amount {
	return Amount{num: num, scale: scale}
}

// newAmountSafe creates a new amount and checks the scale.
func newAmountSafe(num bigint.Int, scale int) (Amount, error) {
	if scale < 0 || scale > MaxScale {
		return Amount{}, ErrScaleRange
	}
	return newAmountUnsafe(num, scale), nil
}

// New returns an amount equal to v with scale 0.
// Booleans are lifted to 1 and 0.
func New[T Native](v T) Amount {
	switch v := any(v).(type) {
	case bool:
		return NewFromBool(v)
	case int:
		return NewFromInt64(int64(v))
	case int8:
		return NewFromInt64(int64(v))
	case int16:
		return NewFromInt64(int64(v))
	case int32:
		return NewFromInt64(int64(v))
	case int64:
		return NewFromInt64(v)
	case uint:
		return NewFromUint64(uint64(v))
	case uint8:
		return NewFromUint64(uint64(v))
	case uint16:
		return NewFromUint64(uint64(v))
	case uint32:
		return NewFromUint64(uint64(v))
	case uint64:
		return NewFromUint64(v)
	}
	return Amount{}
}

// NewFromInt64 returns an amount equal to v with scale 0.
func NewFromInt64(v int64) Amount {
	return newAmountUnsafe(bigint.NewInt(v), 0)
}

// NewFromUint64 returns an amount equal to v with scale 0.
func NewFromUint64(v uint64) Amount {
	return newAmountUnsafe(bigint.NewUint(v), 0)
}

// NewFromBool returns 1 if b is true and 0 otherwise.
func NewFromBool(b bool) Amount {
	return newAmountUnsafe(bigint.NewBool(b), 0)
}

// NewFromBigInt returns an amount equal to num / 10^scale.
// See also method [Amount.Coef].
//
// NewFromBigInt returns an error if the scale is negative or greater than
// [MaxScale].
func NewFromBigInt(num bigint.Int, scale int) (Amount, error) {
	a, err := newAmountSafe(num, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting numerator: %w", err)
	}
	return a, nil
}

// NewFromDecimal converts a [decimal.Decimal] to an amount with the same
// value and scale.
// See also method [Amount.Decimal].
func NewFromDecimal(d decimal.Decimal) Amount {
	num := bigint.NewUint(d.Coef())
	if d.IsNeg() {
		num = num.Neg()
	}
	return newAmountUnsafe(num, d.Scale())
}

// ParseError records a failed conversion of a string to an amount.
type ParseError struct {
	Text string // the input
	Err  error  // the reason the conversion failed, wraps ErrParse
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing amount %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a string to an amount.
// The input string must be in the following format:
//
//	[sign] digit+ ['.' digit+]
//
// where sign is either '+' or '-'. The scale of the result equals the number
// of digits after the decimal point, trailing zeros included, so "1.50" has
// scale 2.
//
// Parse returns a [*ParseError] wrapping [ErrParse] if the string is empty,
// has no digits, has more than one decimal point, has a sign anywhere but
// the first position, has a decimal point without digits on both sides, or
// contains any other character.
func Parse(s string) (Amount, error) {
	a, err := parse(s)
	if err != nil {
		return Amount{}, &ParseError{Text: s, Err: err}
	}
	return a, nil
}

func parse(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty string", ErrParse)
	}

	// Sign
	pos, neg := 0, false
	switch s[0] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	// Integer part
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	whole := s[start:pos]

	// Fractional part
	frac := ""
	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		frac = s[start:pos]
		if pos < len(s) && s[pos] == '.' {
			return Amount{}, fmt.Errorf("%w: more than one decimal point", ErrParse)
		}
		if frac == "" {
			return Amount{}, fmt.Errorf("%w: no digits after decimal point", ErrParse)
		}
	}

	// Trailing garbage
	if pos < len(s) {
		switch ch := s[pos]; {
		case ch == '.':
			return Amount{}, fmt.Errorf("%w: more than one decimal point", ErrParse)
		case ch == '+' || ch == '-':
			return Amount{}, fmt.Errorf("%w: misplaced sign", ErrParse)
		default:
			return Amount{}, fmt.Errorf("%w: unexpected character %q", ErrParse, ch)
		}
	}
	if whole == "" {
		if frac == "" {
			return Amount{}, fmt.Errorf("%w: no digits", ErrParse)
		}
		return Amount{}, fmt.Errorf("%w: no digits before decimal point", ErrParse)
	}
	if len(frac) > MaxScale {
		return Amount{}, fmt.Errorf("%w: %w", ErrParse, ErrScaleRange)
	}

	// Numerator
	num, err := bigint.ParseDigits(neg, whole+frac)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return newAmountUnsafe(num, len(frac)), nil
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return a
}

// Coef returns the numerator of the amount, so that a = coef / 10^scale.
// See also constructor [NewFromBigInt].
func (a Amount) Coef() bigint.Int {
	return a.num
}

// Scale returns the number of digits after the decimal point.
// See also method [Amount.MinScale].
func (a Amount) Scale() int {
	return a.scale
}

// MinScale returns the smallest scale that the amount can be rescaled to
// without rounding.
// See also method [Amount.Trim].
func (a Amount) MinScale() int {
	if a.num.IsZero() {
		return 0
	}
	return max(a.scale-a.num.TrailingZeros(), 0)
}

// Prec returns the number of digits in the numerator.
// Prec assumes that 0 has no digits.
func (a Amount) Prec() int {
	return a.num.Digits()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.num.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.num.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.num.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.num.IsPos()
}

// IsOne returns:
//
//	true  if a = -1 or a = 1
//	false otherwise
func (a Amount) IsOne() bool {
	q, exact := a.num.QuoPow10(a.scale)
	return exact && q.IsOne()
}

// IsInt returns true if there are no significant digits after the decimal point.
func (a Amount) IsInt() bool {
	return a.num.IsZero() || a.num.TrailingZeros() >= a.scale
}

// WithinOne returns:
//
//	true  if -1 < a < 1
//	false otherwise
func (a Amount) WithinOne() bool {
	return a.num.Digits() <= a.scale
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.num.Abs(), a.scale)
}

// Neg returns an amount with the opposite sign.
// The amount itself is not modified. See also method [Amount.Negate].
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.num.Neg(), a.scale)
}

// Negate flips the sign of the amount in place.
// See also method [Amount.Neg].
func (a *Amount) Negate() {
	*a = a.Neg()
}

// CopySign returns an amount with the same sign as amount b.
// CopySign treats 0 as positive.
// See also method [Amount.Sign].
func (a Amount) CopySign(b Amount) Amount {
	if a.IsNeg() == b.IsNeg() {
		return a
	}
	return a.Neg()
}

// Int64 returns the integer part of the amount truncated toward zero.
// See also constructor [NewFromInt64].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) Int64() (int64, bool) {
	q, _ := a.num.QuoPow10(a.scale)
	return q.Int64()
}

// Float64 returns the nearest binary floating-point number.
//
// This conversion may lose data, as float64 has a smaller precision
// than the amount type. If the amount is out of the range of float64,
// then false is returned.
func (a Amount) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(a.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Decimal converts the amount to a [decimal.Decimal] with the same value
// and scale.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the scale is greater than [decimal.MaxScale]
// or the numerator does not fit into the decimal coefficient.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if a.scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, ErrScaleRange)
	}
	coef, ok := a.num.Int64()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: numerator overflow", a)
	}
	d, err := decimal.New(coef, a.scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// align returns the numerators of amounts a and b rescaled to their
// common scale.
func align(a, b Amount) (x, y bigint.Int, scale int) {
	switch {
	case a.scale < b.scale:
		return a.num.MulPow10(b.scale - a.scale), b.num, b.scale
	case a.scale > b.scale:
		return a.num, b.num.MulPow10(a.scale - b.scale), a.scale
	default:
		return a.num, b.num, a.scale
	}
}

// Add returns the exact sum of amounts a and b.
// The scale of the result is the larger of the operand scales.
func (a Amount) Add(b Amount) Amount {
	x, y, scale := align(a, b)
	return newAmountUnsafe(x.Add(y), scale)
}

// Sub returns the exact difference between amounts a and b.
// The scale of the result is the larger of the operand scales.
func (a Amount) Sub(b Amount) Amount {
	x, y, scale := align(a, b)
	return newAmountUnsafe(x.Sub(y), scale)
}

// SubAbs returns the exact absolute difference between amounts a and b.
func (a Amount) SubAbs(b Amount) Amount {
	return a.Sub(b).Abs()
}

// Mul returns the exact product of amounts a and b.
// The scale of the result is the sum of the operand scales.
func (a Amount) Mul(b Amount) Amount {
	return newAmountUnsafe(a.num.Mul(b.num), a.scale+b.scale)
}

// AddAssign sets a to a + b.
func (a *Amount) AddAssign(b Amount) {
	*a = a.Add(b)
}

// SubAssign sets a to a - b.
func (a *Amount) SubAssign(b Amount) {
	*a = a.Sub(b)
}

// MulAssign sets a to a * b.
func (a *Amount) MulAssign(b Amount) {
	*a = a.Mul(b)
}

// QuoAssign sets a to a / b computed with [DefaultPrecision].
// On error a is left unchanged.
// See also method [Amount.Quo].
func (a *Amount) QuoAssign(b Amount) error {
	c, err := a.Quo(b)
	if err != nil {
		return err
	}
	*a = c
	return nil
}

// QuoRem returns the quotient q and remainder r of amounts a and b such that
// a = b * q + r, where q is an integer and the sign of the remainder r is
// the same as the sign of the dividend a.
// See also methods [Amount.Quo] and [Amount.Split].
//
// QuoRem returns an error if the divisor is 0.
func (a Amount) QuoRem(b Amount) (q, r Amount, err error) {
	q, r, err = a.quoRem(b)
	if err != nil {
		return Amount{}, Amount{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", a, b, a, b, err)
	}
	return q, r, nil
}

func (a Amount) quoRem(b Amount) (q, r Amount, err error) {
	x, y, scale := align(a, b)
	n, m, err := x.QuoRem(y)
	if err != nil {
		return Amount{}, Amount{}, ErrDivisionByZero
	}
	return newAmountUnsafe(n, 0), newAmountUnsafe(m, scale), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// Every part has the scale of the original amount.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
// See also methods [Amount.Quo] and [Amount.QuoRem].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	// Parts
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	par := New(parts)

	// Quotient
	quo, err := a.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(a.Scale())

	// Remainder
	rem := a.Sub(quo.Mul(par))
	ulp := rem.ULP().CopySign(rem)

	res := make([]Amount, parts)
	for i := 0; i < parts; i++ {
		res[i] = quo
		// Remainder distribution
		if !rem.IsZero() {
			rem = rem.Sub(ulp)
			res[i] = res[i].Add(ulp)
		}
	}
	return res, nil
}

// One returns an amount with a value of 1, having the same scale as amount a.
// See also methods [Amount.Zero], [Amount.ULP].
func (a Amount) One() Amount {
	return newAmountUnsafe(bigint.NewInt(1).MulPow10(a.scale), a.scale)
}

// Zero returns an amount with a value of 0, having the same scale as amount a.
// See also methods [Amount.One], [Amount.ULP].
func (a Amount) Zero() Amount {
	return newAmountUnsafe(bigint.Int{}, a.scale)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two amounts with the same scale as amount a.
// See also methods [Amount.Zero], [Amount.One].
func (a Amount) ULP() Amount {
	return newAmountUnsafe(bigint.NewInt(1), a.scale)
}

// shorten divides the numerator by 10^(a.scale - scale) truncating toward
// zero, and reports the remainder numerator at the original scale.
func (a Amount) shorten(scale int) (q, r bigint.Int) {
	k := a.scale - scale
	q, exact := a.num.QuoPow10(k)
	if exact {
		return q, bigint.Int{}
	}
	return q, a.num.Sub(q.MulPow10(k))
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// If the given scale is not less than the scale of the amount, the amount
// is returned unchanged.
// See also methods [Amount.Rescale], [Amount.Trunc].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Round(scale int) Amount {
	scale = max(scale, 0)
	if scale >= a.scale {
		return a
	}
	q, r := a.shorten(scale)
	if !r.IsZero() {
		half := bigint.NewInt(5).MulPow10(a.scale - scale - 1)
		switch c := r.CmpAbs(half); {
		case c > 0, c == 0 && q.IsOdd():
			q = q.Add(bigint.NewInt(int64(a.Sign())))
		}
	}
	return newAmountUnsafe(q, scale)
}

// Trunc returns an amount truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
// See also method [Amount.Round].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Trunc(scale int) Amount {
	scale = max(scale, 0)
	if scale >= a.scale {
		return a
	}
	q, _ := a.shorten(scale)
	return newAmountUnsafe(q, scale)
}

// Ceil returns an amount rounded up to the specified number of digits after
// the decimal point using [rounding toward positive infinity].
// See also method [Amount.Floor].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (a Amount) Ceil(scale int) Amount {
	scale = max(scale, 0)
	if scale >= a.scale {
		return a
	}
	q, r := a.shorten(scale)
	if r.IsPos() {
		q = q.Add(bigint.NewInt(1))
	}
	return newAmountUnsafe(q, scale)
}

// Floor returns an amount rounded down to the specified number of digits after
// the decimal point using [rounding toward negative infinity].
// See also method [Amount.Ceil].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (a Amount) Floor(scale int) Amount {
	scale = max(scale, 0)
	if scale >= a.scale {
		return a
	}
	q, r := a.shorten(scale)
	if r.IsNeg() {
		q = q.Sub(bigint.NewInt(1))
	}
	return newAmountUnsafe(q, scale)
}

// Pad returns an amount zero-padded to the specified number of digits after
// the decimal point.
// If the given scale is not greater than the scale of the amount, the amount
// is returned unchanged.
// See also method [Amount.Trim].
func (a Amount) Pad(scale int) Amount {
	if scale <= a.scale {
		return a
	}
	return newAmountUnsafe(a.num.MulPow10(scale-a.scale), scale)
}

// Rescale returns an amount rounded or zero-padded to the given number of digits
// after the decimal point.
// See also methods [Amount.Round], [Amount.Pad].
func (a Amount) Rescale(scale int) Amount {
	scale = max(scale, 0)
	if scale > a.scale {
		return a.Pad(scale)
	}
	return a.Round(scale)
}

// Trim returns an amount with trailing zeros removed up to the given scale.
// See also methods [Amount.Reduce], [Amount.Pad].
func (a Amount) Trim(scale int) Amount {
	scale = max(scale, 0)
	if scale >= a.scale {
		return a
	}
	if a.num.IsZero() {
		return newAmountUnsafe(bigint.Int{}, scale)
	}
	k := min(a.num.TrailingZeros(), a.scale-scale)
	q, _ := a.num.QuoPow10(k)
	return newAmountUnsafe(q, a.scale-k)
}

// Reduce returns an amount with all trailing zeros removed.
// The result has scale equal to [Amount.MinScale].
func (a Amount) Reduce() Amount {
	return a.Trim(0)
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of an amount: the numerator with the decimal point inserted
// at the stored scale. Trailing zeros are kept, values within (-1, 1) have
// a leading 0, and the '-' sign is printed only for negative values.
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.Append(nil))
}

// Append appends the canonical representation of the amount to buf.
// See also method [Amount.String].
func (a Amount) Append(buf []byte) []byte {
	if a.num.IsNeg() {
		buf = append(buf, '-')
	}
	return a.appendAbs(buf)
}

func (a Amount) appendAbs(buf []byte) []byte {
	digs := a.num.AppendAbs(nil)
	if a.scale == 0 {
		return append(buf, digs...)
	}
	// Integer digits
	if n := len(digs) - a.scale; n > 0 {
		buf = append(buf, digs[:n]...)
		digs = digs[n:]
	} else {
		buf = append(buf, '0')
	}
	// Fractional digits
	buf = append(buf, '.')
	for i := len(digs); i < a.scale; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digs...)
}

// Cmp compares amounts by value and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// See also methods [Amount.CmpAbs], [Amount.CmpTotal].
func (a Amount) Cmp(b Amount) int {
	if a.num.Sign() != b.num.Sign() {
		return cmpInt(a.num.Sign(), b.num.Sign())
	}
	x, y, _ := align(a, b)
	return x.Cmp(y)
}

// CmpAbs compares absolute values of amounts and returns:
//
//	-1 if |a| < |b|
//	 0 if |a| = |b|
//	+1 if |a| > |b|
//
// See also methods [Amount.Cmp], [Amount.CmpTotal].
func (a Amount) CmpAbs(b Amount) int {
	x, y, _ := align(a, b)
	return x.CmpAbs(y)
}

// CmpTotal compares the representation of amounts and returns:
//
//	-1 if a < b
//	-1 if a = b and a.scale > b.scale
//	 0 if a = b and a.scale = b.scale
//	+1 if a = b and a.scale < b.scale
//	+1 if a > b
//
// See also methods [Amount.Cmp], [Amount.CmpAbs].
func (a Amount) CmpTotal(b Amount) int {
	if c := a.Cmp(b); c != 0 {
		return c
	}
	return cmpInt(b.scale, a.scale)
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Equal returns true if amounts a and b have the same value, regardless of
// their scales.
func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// Less returns true if a < b.
func (a Amount) Less(b Amount) bool {
	return a.Cmp(b) < 0
}

// Min returns the smaller amount.
// See also method [Amount.CmpTotal].
func (a Amount) Min(b Amount) Amount {
	if a.CmpTotal(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
// See also method [Amount.CmpTotal].
func (a Amount) Max(b Amount) Amount {
	if a.CmpTotal(b) >= 0 {
		return a
	}
	return b
}

// Clamp compares amounts and returns:
//
//	min if a < min
//	max if a > max
//	  a otherwise
//
// See also method [Amount.CmpTotal].
//
// Clamp returns an error if min is greater than max numerically.
func (a Amount) Clamp(min, max Amount) (Amount, error) {
	if min.Cmp(max) > 0 {
		return Amount{}, fmt.Errorf("clamping %v: invalid range", a)
	}
	if min.CmpTotal(max) > 0 {
		// Numerically min and max are equal but have different scales.
		// Swapping min and max to ensure total ordering.
		min, max = max, min
	}
	if a.CmpTotal(min) < 0 {
		return min, nil
	}
	if a.CmpTotal(max) > 0 {
		return max, nil
	}
	return a, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description   |
//	| ------ | -------- | ------------- |
//	| %s, %v | -5.670   | Amount        |
//	| %q     | "-5.670" | Quoted amount |
//	| %f     | -5.670   | Amount        |
//
// The '-', '+', ' ' and '0' format flags can be used with all verbs.
//
// Precision is only supported for the %f verb. The amount is rounded half to
// even or zero-padded to the given precision.
// The default precision is equal to the actual scale of the amount.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	d := a

	// Rescaling
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			d = d.Rescale(p)
		}
	}

	// Arithmetic sign
	var sign []byte
	switch {
	case d.IsNeg():
		sign = []byte{'-'}
	case state.Flag('+'):
		sign = []byte{'+'}
	case state.Flag(' '):
		sign = []byte{' '}
	}

	// Digits
	digs := d.appendAbs(nil)

	// Opening and closing quotes
	quote := verb == 'q' || verb == 'Q'

	// Calculating padding
	width := len(sign) + len(digs)
	if quote {
		width += 2
	}
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, width+lspaces+lzeros+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if quote {
		buf = append(buf, '"')
	}
	buf = append(buf, sign...)
	for i := 0; i < lzeros; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs...)
	if quote {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(amount.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
