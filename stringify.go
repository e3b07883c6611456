package num

import (
	"encoding/hex"
	"fmt"
)

// Stringify writes the canonical hex form of u into buf and returns
// buf[:HexLen]. The form is "0x" followed by 32 lowercase digits, most
// significant byte first, and is the same on every platform. A NUL is written
// at buf[HexLen] for callers handing the buffer to C.
//
// len(buf) must be at least StringifySize; Stringify panics before writing
// anything if it is not.
func Stringify(buf []byte, u U128) []byte {
	return stringify(hostOrder, buf, u)
}

func stringify(host ByteOrder, buf []byte, u U128) []byte {
	if len(buf) < StringifySize {
		panic(fmt.Errorf("num: stringify buffer too small: %d < %d", len(buf), StringifySize))
	}

	// Big-endian first, then read the bytes back out in host memory order:
	var raw [Size]byte
	host.PutU128(raw[:], convert(host, BigEndian, u))

	buf[0], buf[1] = '0', 'x'
	hex.Encode(buf[2:HexLen], raw[:])
	buf[HexLen] = 0
	return buf[:HexLen]
}

// AppendHex appends the canonical hex form of u to dst and returns the
// extended slice. No terminator is appended.
func AppendHex(dst []byte, u U128) []byte {
	var raw [Size]byte
	BigEndian.PutU128(raw[:], u)

	var out [HexLen]byte
	out[0], out[1] = '0', 'x'
	hex.Encode(out[2:], raw[:])
	return append(dst, out[:]...)
}

// String returns the canonical hex form of u, i.e.
// "0x000102030405060708090a0b0c0d0e0f".
func (u U128) String() string {
	var buf [HexLen]byte
	return string(AppendHex(buf[:0], u))
}
