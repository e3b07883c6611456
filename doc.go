/*
Package num provides a uint128 (U128) value type together with the byte
swap, host/network byte order and hex rendering routines that
encoding/binary and math/bits provide for the narrower widths.

U128 is a value type; all operations return new values.

Simple example:

	u := U128FromWords([4]uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f})
	fmt.Println(u)
	// Output: 0x000102030405060708090a0b0c0d0e0f

U128 can be created from a variety of sources:

	U128FromWords(w [4]uint32) U128
	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	BigEndian.U128(b []byte) U128
	LittleEndian.U128(b []byte) U128

Byte order conversion mirrors the htobe/be*toh family. The host byte order is
fixed when the package is built:

	HostToBig(u U128) U128
	HostToLittle(u U128) U128
	BigToHost(u U128) U128
	LittleToHost(u U128) U128

Each pair is the same operation, as reversing the bytes of a value twice gives
the original value back. Endian performs the same conversions for an explicit
host order, which is handy for checking what another platform would produce.

The canonical string form is "0x" followed by 32 lowercase hex digits, most
significant byte first, on every platform. Stringify writes it into a caller
supplied buffer of at least StringifySize bytes and panics if the buffer is
too small.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- encoding.TextMarshaler

Parsing the hex form back into a U128 is not supported.
*/
package num
