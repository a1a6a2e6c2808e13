/*
Package amount implements exact decimal quantities for a financial ledger.
An [Amount] is an arbitrary-precision integer numerator scaled by a power of
ten, so sums, differences and products are never rounded, regardless of the
magnitude or the number of digits after the decimal point.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact addition, subtraction and multiplication
  - Truncating division with a configurable precision-growth policy
  - Comparison by value, so 1.5 and 1.50 are equal
  - Rounding, truncation and rescaling to a given scale
  - Text, JSON, BSON, SQL and msgpack encodings

# Representation

An Amount consists of a numerator of type [bigint.Int] and a scale, the number
of digits after the decimal point. The value of an amount is num / 10^scale.
Two amounts with different scales may denote the same value, and the scale
is preserved as part of the representation:

	MustParse("1.50").Scale() == 2
	MustParse("1.50").Equal(MustParse("1.5")) == true

The zero value of Amount is 0 at scale 0.

# Operations

Add and Sub return a result with the larger of the operand scales.
Mul returns a result with the sum of the operand scales.
Native Go integers and booleans are lifted to amounts with [New]:

	a.Add(amount.New(10))

Every operation also has a compound form with a pointer receiver, such as
[Amount.AddAssign], which replaces the receiver with the result.

# Division

Division cannot be exact in general, so [Amount.Quo] follows a
precision-growth policy described by [Precision]. The quotient of amounts
with scales sa and sb has scale

	max(min(2*sa + Extend, MaxScale), sa + sb)

and its remaining digits are truncated toward zero. With the default policy
123 / 456 = 0.269736, and dividing that result by 456 again yields a quotient
with 18 digits after the decimal point.

Dividing by 1 or -1 returns the dividend itself, and dividing an amount by
an equal amount returns exactly 1.

# Errors

Parsing fails with a [*ParseError] wrapping [ErrParse].
Division by zero fails with [ErrDivisionByZero].
On error, operands and receivers are left unchanged.
*/
package amount
