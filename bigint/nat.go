package bigint

import "strconv"

// nat is an unsigned magnitude stored as base-10^9 limbs, least significant
// limb first. A normalized nat has no most significant zero limbs; zero is
// the empty (nil) slice.
//
// Functions in this file never write into their arguments. Every result is
// a freshly allocated slice, which is what makes Int an immutable value.
type nat []uint32

const (
	// base is the limb radix.
	base = 1_000_000_000
	// limbDigits is the number of decimal digits held by one limb.
	limbDigits = 9
)

// pow10 is a cache of powers of 10 that fit into a limb, where pow10[x] = 10^x.
var pow10 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// norm trims most significant zero limbs.
func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return x[:i]
}

// natFromUint64 splits v into limbs.
func natFromUint64(v uint64) nat {
	var z nat
	for v != 0 {
		z = append(z, uint32(v%base)) //nolint:gosec // limb < 10^9
		v /= base
	}
	return z
}

// uint64 returns x as uint64 and reports whether it fits.
func (x nat) uint64() (uint64, bool) {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		l := uint64(x[i])
		if v > (^uint64(0)-l)/base {
			return 0, false
		}
		v = v*base + l
	}
	return v, true
}

func cmpNat(x, y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addNat calculates x + y.
func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		if s >= base {
			s -= base
			carry = 1
		} else {
			carry = 0
		}
		z[i] = s
	}
	z[len(x)] = carry
	return z.norm()
}

// subNat calculates x - y, where x >= y.
func subNat(x, y nat) nat {
	if len(y) == 0 {
		return x
	}
	z := make(nat, len(x))
	var borrow uint32
	for i := range x {
		s := int64(x[i]) - int64(borrow)
		if i < len(y) {
			s -= int64(y[i])
		}
		if s < 0 {
			s += base
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(s) //nolint:gosec // 0 <= s < 10^9
	}
	return z.norm()
}

// mulNat calculates x * y using schoolbook multiplication.
func mulNat(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(y) == 1 {
		return mulSmall(x, y[0])
	}
	if len(x) == 1 {
		return mulSmall(y, x[0])
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t % base) //nolint:gosec // limb < 10^9
			carry = t / base
		}
		for k := i + len(y); carry != 0; k++ {
			t := uint64(z[k]) + carry
			z[k] = uint32(t % base) //nolint:gosec // limb < 10^9
			carry = t / base
		}
	}
	return z.norm()
}

// mulSmall calculates x * m, where m < base.
func mulSmall(x nat, m uint32) nat {
	if len(x) == 0 || m == 0 {
		return nil
	}
	if m == 1 {
		return x
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(m) + carry
		z[i] = uint32(t % base) //nolint:gosec // limb < 10^9
		carry = t / base
	}
	z[len(x)] = uint32(carry) //nolint:gosec // carry < 10^9
	return z.norm()
}

// divSmall calculates q = ⌊x / d⌋, r = x - d * q, where 0 < d < base.
func divSmall(x nat, d uint32) (q nat, r uint32) {
	if len(x) == 0 {
		return nil, 0
	}
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*base + uint64(x[i])
		q[i] = uint32(cur / uint64(d)) //nolint:gosec // quotient limb < 10^9
		rem = cur % uint64(d)
	}
	return q.norm(), uint32(rem) //nolint:gosec // rem < d
}

// divNat calculates q = ⌊u / v⌋, r = u - v * q, where v != 0.
// It implements Algorithm D from Knuth, TAOCP Vol. 2, §4.3.1 in base 10^9.
func divNat(u, v nat) (q, r nat) {
	if cmpNat(u, v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, rem := divSmall(u, v[0])
		return q, natFromUint64(uint64(rem))
	}

	// D1. Normalize so that the leading divisor limb is at least base/2.
	d := uint32(base / (uint64(v[len(v)-1]) + 1)) //nolint:gosec // d <= base/2
	un := make(nat, len(u)+1)
	copy(un, mulSmall(u, d))
	vn := mulSmall(v, d)

	n := len(vn)
	m := len(u) - n
	q = make(nat, m+1)
	vtop, vnext := uint64(vn[n-1]), uint64(vn[n-2])

	for j := m; j >= 0; j-- {
		// D3. Estimate the quotient limb.
		num := uint64(un[j+n])*base + uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num % vtop
		for qhat >= base || qhat*vnext > rhat*base+uint64(un[j+n-2]) {
			qhat--
			rhat += vtop
			if rhat >= base {
				break
			}
		}

		// D4. Multiply and subtract.
		var carry uint64
		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat*uint64(vn[i]) + carry
			carry = p / base
			t := int64(un[i+j]) - int64(p%base) - borrow //nolint:gosec // values < 2^32
			if t < 0 {
				t += base
				borrow = 1
			} else {
				borrow = 0
			}
			un[i+j] = uint32(t) //nolint:gosec // 0 <= t < 10^9
		}
		top := int64(un[j+n]) - int64(carry) - borrow //nolint:gosec // values < 2^32

		// D6. Add back when the estimate was one too large.
		if top < 0 {
			qhat--
			var c uint32
			for i := 0; i < n; i++ {
				s := un[i+j] + vn[i] + c
				if s >= base {
					s -= base
					c = 1
				} else {
					c = 0
				}
				un[i+j] = s
			}
			top += int64(c)
		}
		un[j+n] = uint32(top) //nolint:gosec // 0 <= top < 10^9
		q[j] = uint32(qhat)   //nolint:gosec // qhat < 10^9
	}

	// D8. Unnormalize the remainder.
	r, _ = divSmall(un[:n].norm(), d)
	return q.norm(), r
}

// shlLimbs calculates x * base^k.
func shlLimbs(x nat, k int) nat {
	if len(x) == 0 || k == 0 {
		return x
	}
	z := make(nat, len(x)+k)
	copy(z[k:], x)
	return z
}

// mulPow10 calculates x * 10^n.
func mulPow10(x nat, n int) nat {
	if len(x) == 0 || n == 0 {
		return x
	}
	return shlLimbs(mulSmall(x, pow10[n%limbDigits]), n/limbDigits)
}

// quoPow10 calculates ⌊x / 10^n⌋ and reports whether the division was exact.
func quoPow10(x nat, n int) (q nat, exact bool) {
	if len(x) == 0 || n == 0 {
		return x, true
	}
	k := n / limbDigits
	if k >= len(x) {
		return nil, false
	}
	exact = true
	for _, l := range x[:k] {
		if l != 0 {
			exact = false
			break
		}
	}
	q, rem := divSmall(x[k:], pow10[n%limbDigits])
	return q, exact && rem == 0
}

// digits returns the number of decimal digits in x, 0 for zero.
func (x nat) digits() int {
	if len(x) == 0 {
		return 0
	}
	top := x[len(x)-1]
	n := 1
	for n < limbDigits && top >= pow10[n] {
		n++
	}
	return (len(x)-1)*limbDigits + n
}

// trailingZeros returns the number of trailing decimal zeros in x, 0 for zero.
func (x nat) trailingZeros() int {
	n := 0
	for _, l := range x {
		if l == 0 {
			n += limbDigits
			continue
		}
		for l%10 == 0 {
			l /= 10
			n++
		}
		return n
	}
	return 0
}

// parseNat converts a string of decimal digits to a nat.
// The caller guarantees that s contains only the bytes '0'-'9'.
func parseNat(s string) nat {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}
	if s == "" {
		return nil
	}
	z := make(nat, (len(s)+limbDigits-1)/limbDigits)
	for i := range z {
		hi := len(s) - i*limbDigits
		lo := max(hi-limbDigits, 0)
		var l uint32
		for k := lo; k < hi; k++ {
			l = l*10 + uint32(s[k]-'0')
		}
		z[i] = l
	}
	return z
}

// appendNat appends the decimal digits of x to buf.
func appendNat(buf []byte, x nat) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	buf = strconv.AppendUint(buf, uint64(x[len(x)-1]), 10)
	var tmp [limbDigits]byte
	for i := len(x) - 2; i >= 0; i-- {
		l := x[i]
		for k := limbDigits - 1; k >= 0; k-- {
			tmp[k] = byte(l%10) + '0'
			l /= 10
		}
		buf = append(buf, tmp[:]...)
	}
	return buf
}
