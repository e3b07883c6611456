package num

const (
	maxUint64 = 1<<64 - 1

	// Size is the number of bytes in a U128.
	Size = 16

	// HexLen is the length of the canonical hex form: "0x" followed by two
	// lowercase digits per byte.
	HexLen = 2*Size + 2

	// StringifySize is the smallest buffer Stringify accepts. It leaves room
	// for the "0x" prefix, 32 digits and a NUL terminator.
	StringifySize = 2*Size + 3

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128
)
