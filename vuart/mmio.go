package vuart

import (
	"sync/atomic"
	"unsafe"
)

// Accessor is single-byte access to a device register block. Every call is
// one bus transaction: no buffering, no coalescing, no retries.
type Accessor interface {
	Read8(r Reg) uint8
	Write8(r Reg, v uint8)
}

// Region is an Accessor over a raw memory-mapped register block. The mapping
// is exclusively owned by this process for its lifetime and is only ever
// touched through Read8/Write8.
type Region struct {
	mem []byte
}

// NewRegion wraps an already-mapped register block.
func NewRegion(mem []byte) *Region {
	return &Region{mem: mem}
}

var fence uint32

// mb orders the surrounding MMIO accesses with respect to the device. An
// atomic RMW compiles to a full barrier (dmb on ARM) and the compiler may not
// move memory operations across it.
func mb() {
	atomic.AddUint32(&fence, 0)
}

// Read8 performs a single-byte load at r, followed by a memory barrier.
func (m *Region) Read8(r Reg) uint8 {
	v := *(*uint8)(unsafe.Pointer(&m.mem[r]))
	mb()
	return v
}

// Write8 performs a single-byte store at r, followed by a memory barrier.
func (m *Region) Write8(r Reg, v uint8) {
	*(*uint8)(unsafe.Pointer(&m.mem[r])) = v
	mb()
}
