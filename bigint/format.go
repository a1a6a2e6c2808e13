package bigint

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates that a string does not represent an integer.
var ErrSyntax = errors.New("invalid syntax")

// ParseError records a failed conversion of a string to an integer.
type ParseError struct {
	Text string // the input
	Err  error  // the reason the conversion failed, wraps ErrSyntax
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a string to an integer.
// The input string must be in the following format:
//
//	[sign] digit+
//
// where sign is either '+' or '-'. Leading zeros are allowed and ignored.
//
// Parse returns a [*ParseError] wrapping [ErrSyntax] if the string contains
// no digits, a misplaced sign, or any other character.
func Parse(s string) (Int, error) {
	neg, digs, err := splitSign(s)
	if err != nil {
		return Int{}, &ParseError{Text: s, Err: err}
	}
	return newInt(neg, parseNat(digs)), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return x
}

// ParseDigits builds an integer from an optional sign and a digit string.
// It is meant for callers that have already split a decimal literal and
// validated its bytes, such as the parser of scaled decimals.
func ParseDigits(neg bool, digits string) (Int, error) {
	if digits == "" {
		return Int{}, &ParseError{Text: digits, Err: fmt.Errorf("%w: no digits", ErrSyntax)}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, &ParseError{Text: digits, Err: fmt.Errorf("%w: unexpected character %q", ErrSyntax, digits[i])}
		}
	}
	return newInt(neg, parseNat(digits)), nil
}

func splitSign(s string) (neg bool, digits string, err error) {
	switch {
	case s == "":
		return false, "", fmt.Errorf("%w: empty string", ErrSyntax)
	case s[0] == '-':
		neg, digits = true, s[1:]
	case s[0] == '+':
		digits = s[1:]
	default:
		digits = s
	}
	if digits == "" {
		return false, "", fmt.Errorf("%w: no digits", ErrSyntax)
	}
	for i := 0; i < len(digits); i++ {
		if ch := digits[i]; ch < '0' || ch > '9' {
			return false, "", fmt.Errorf("%w: unexpected character %q", ErrSyntax, ch)
		}
	}
	return neg, digits, nil
}

// String implements the [fmt.Stringer] interface and returns the canonical
// decimal representation: no leading zeros, and a '-' sign only for
// negative values.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	return string(x.Append(nil))
}

// Append appends the canonical decimal representation of x to buf.
func (x Int) Append(buf []byte) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	return appendNat(buf, x.abs)
}

// AppendAbs appends the decimal digits of |x| to buf.
func (x Int) AppendAbs(buf []byte) []byte {
	return appendNat(buf, x.abs)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Int{}, err)
	}
	return nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description    |
//	| ---------- | ------- | -------------- |
//	| %s, %v, %d | -123    | Integer        |
//	| %q         | "-123"  | Quoted integer |
//
// The '-', '+', ' ' and '0' format flags and width are supported.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	// Arithmetic sign
	var sign []byte
	switch {
	case x.neg:
		sign = []byte{'-'}
	case state.Flag('+'):
		sign = []byte{'+'}
	case state.Flag(' '):
		sign = []byte{' '}
	}

	digs := appendNat(nil, x.abs)
	quote := verb == 'q'

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
		case state.Flag('0') && !quote:
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
	case 's', 'v', 'd', 'q':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
