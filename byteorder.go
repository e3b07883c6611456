package num

import (
	"encoding/binary"
	"fmt"
)

// ByteOrder names the order in which the 16 bytes of a U128 are laid out.
// The zero value is not a valid order.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota + 1
	LittleEndian
)

// HostOrder returns the byte order of the platform the package was built for.
func HostOrder() ByteOrder { return hostOrder }

func (o ByteOrder) Valid() bool { return o == BigEndian || o == LittleEndian }

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// PutU128 stores u into the first Size bytes of b. It panics if b is too
// short, as encoding/binary does.
func (o ByteOrder) PutU128(b []byte, u U128) {
	_ = b[Size-1] // early bounds check
	switch o {
	case BigEndian:
		binary.BigEndian.PutUint64(b, u.hi)
		binary.BigEndian.PutUint64(b[8:], u.lo)
	case LittleEndian:
		binary.LittleEndian.PutUint64(b, u.lo)
		binary.LittleEndian.PutUint64(b[8:], u.hi)
	default:
		panic(fmt.Errorf("num: invalid byte order %s", o))
	}
}

// U128 reads a U128 from the first Size bytes of b. It panics if b is too
// short.
func (o ByteOrder) U128(b []byte) (u U128) {
	_ = b[Size-1] // early bounds check
	switch o {
	case BigEndian:
		u.hi = binary.BigEndian.Uint64(b)
		u.lo = binary.BigEndian.Uint64(b[8:])
	case LittleEndian:
		u.lo = binary.LittleEndian.Uint64(b)
		u.hi = binary.LittleEndian.Uint64(b[8:])
	default:
		panic(fmt.Errorf("num: invalid byte order %s", o))
	}
	return u
}

// AppendU128 appends the Size bytes of u to b and returns the extended slice.
func (o ByteOrder) AppendU128(b []byte, u U128) []byte {
	var scratch [Size]byte
	o.PutU128(scratch[:], u)
	return append(b, scratch[:]...)
}

// convert moves u between host and target order. Converting to and from a
// byte order is the same operation, so all four directions share it.
func convert(host, target ByteOrder, u U128) U128 {
	if host == target {
		return u
	}
	return u.ReverseBytes()
}

// HostToBig converts u from host byte order to big-endian (network) order.
func HostToBig(u U128) U128 { return convert(hostOrder, BigEndian, u) }

// HostToLittle converts u from host byte order to little-endian order.
func HostToLittle(u U128) U128 { return convert(hostOrder, LittleEndian, u) }

// BigToHost converts u from big-endian (network) order to host byte order.
func BigToHost(u U128) U128 { return convert(hostOrder, BigEndian, u) }

// LittleToHost converts u from little-endian order to host byte order.
func LittleToHost(u U128) U128 { return convert(hostOrder, LittleEndian, u) }

// Endian performs the byte order conversions for a fixed host order. Host
// is configured for the current platform; other values are mostly useful for
// producing what a platform of the opposite byte order would. The zero Endian
// is not usable; use Host or NewEndian.
type Endian struct {
	host ByteOrder
}

// Host converts relative to the byte order of the current platform.
var Host = Endian{host: hostOrder}

// NewEndian returns an Endian for the given host order. It panics if host is
// not BigEndian or LittleEndian.
func NewEndian(host ByteOrder) Endian {
	if !host.Valid() {
		panic(fmt.Errorf("num: invalid host byte order %s", host))
	}
	return Endian{host: host}
}

func (e Endian) Order() ByteOrder { return e.host }

func (e Endian) HostToBig(u U128) U128    { return convert(e.host, BigEndian, u) }
func (e Endian) HostToLittle(u U128) U128 { return convert(e.host, LittleEndian, u) }
func (e Endian) BigToHost(u U128) U128    { return convert(e.host, BigEndian, u) }
func (e Endian) LittleToHost(u U128) U128 { return convert(e.host, LittleEndian, u) }

// HostBytes returns the bytes of u as a native 128-bit integer would hold
// them in memory on this host.
func (e Endian) HostBytes(u U128) (out [Size]byte) {
	e.host.PutU128(out[:], u)
	return out
}

// Stringify is Stringify for this host order. The result is the same for
// every host order.
func (e Endian) Stringify(buf []byte, u U128) []byte {
	return stringify(e.host, buf, u)
}
