//go:build s390x || ppc64 || mips || mips64
// +build s390x ppc64 mips mips64

package num

const hostOrder = BigEndian
