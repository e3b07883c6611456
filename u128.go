package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }

// U128FromWords assembles a U128 from four 32-bit words, most significant
// first:
//
//	w[0]<<96 | w[1]<<64 | w[2]<<32 | w[3]
//
// The result does not depend on the host byte order.
func U128FromWords(w [4]uint32) U128 {
	return U128{
		hi: uint64(w[0])<<32 | uint64(w[1]),
		lo: uint64(w[2])<<32 | uint64(w[3]),
	}
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Words splits the U128 into four 32-bit words, most significant first. See
// U128FromWords() for the counterpart.
func (u U128) Words() (w [4]uint32) {
	w[0] = uint32(u.hi >> 32)
	w[1] = uint32(u.hi)
	w[2] = uint32(u.lo >> 32)
	w[3] = uint32(u.lo)
	return w
}

// Format writes the canonical hex form for the 's' and 'v' verbs. All other
// verbs are handed to big.Int, so '%d' prints decimal and '%X' prints
// unpadded uppercase hex.
func (u U128) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		var buf [HexLen]byte
		s.Write(AppendHex(buf[:0], u))
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will overflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Cmp(n U128) int {
	switch {
	case u.hi > n.hi:
		return 1
	case u.hi < n.hi:
		return -1
	case u.lo > n.lo:
		return 1
	case u.lo < n.lo:
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !u.GreaterThan(n)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh shifts u left by n bits. Shifting by 128 or more yields zero.
func (u U128) Lsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n > 64:
		v.hi = u.lo << (n - 64)
	case n == 64:
		v.hi = u.lo
	default:
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	}
	return v
}

// Rsh shifts u right by n bits. Shifting by 128 or more yields zero.
func (u U128) Rsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n > 64:
		v.lo = u.hi >> (n - 64)
	case n == 64:
		v.lo = u.hi
	default:
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// MarshalText emits the canonical hex form. There is no UnmarshalText.
func (u U128) MarshalText() ([]byte, error) {
	return AppendHex(make([]byte, 0, HexLen), u), nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, HexLen+2)
	out = append(out, '"')
	out = AppendHex(out, u)
	out = append(out, '"')
	return out, nil
}
