/*
Package bigint implements arbitrary-precision signed integers.

An [Int] stores its magnitude as a slice of base-10^9 limbs, least
significant limb first, so that conversions to and from decimal text and
scaling by powers of ten stay linear in the number of digits.
The representation is canonical: zero has no limbs and is never negative,
and no other value carries most significant zero limbs.

# Operations

Add, Sub and Mul never fail. Division truncates toward zero: [Int.QuoRem]
returns q and r such that x = y * q + r, where |r| < |y| and r has the sign
of x. Division by zero returns [ErrDivByZero].

# Errors

[Parse] returns a [*ParseError] that wraps [ErrSyntax].
Powers of ten beyond [MaxPow10] return [ErrTooLarge].
*/
package bigint
