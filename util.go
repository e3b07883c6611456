package num

type RandSource interface {
	Uint64() uint64
}

func LargerU128(a, b U128) U128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
