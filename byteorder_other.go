//go:build !amd64 && !arm64 && !386 && !arm && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !s390x && !ppc64 && !mips && !mips64
// +build !amd64,!arm64,!386,!arm,!riscv64,!ppc64le,!mips64le,!mipsle,!loong64,!wasm,!s390x,!ppc64,!mips,!mips64

package num

import (
	"unsafe"
)

// hostOrder is probed once at init on ports without a known byte order.
var hostOrder = detectHostOrder()

func detectHostOrder() ByteOrder {
	var x uint16 = 0x0102
	b := *(*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 0x01 {
		return BigEndian
	}
	return LittleEndian
}
