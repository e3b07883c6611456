//go:build amd64 || arm64 || 386 || arm || riscv64 || ppc64le || mips64le || mipsle || loong64 || wasm
// +build amd64 arm64 386 arm riscv64 ppc64le mips64le mipsle loong64 wasm

package num

const hostOrder = LittleEndian
