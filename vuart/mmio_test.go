package vuart

import "testing"

func TestRegionReadWrite(t *testing.T) {
	mem := make([]byte, 0x40)
	m := NewRegion(mem)

	for _, r := range []Reg{THR, IER, FCR, LCR, MCR, LSR, MSR, SCR, GCRA, GCRH} {
		m.Write8(r, 0xa5)
		if got := mem[r]; got != 0xa5 {
			t.Errorf("Write8(0x%02x) stored at wrong offset, mem[0x%02x] = 0x%02x", r, r, got)
		}
		if got := m.Read8(r); got != 0xa5 {
			t.Errorf("Read8(0x%02x) = 0x%02x, want 0xa5", r, got)
		}
		m.Write8(r, 0x00)
	}
}

func TestRegionSingleByteAccess(t *testing.T) {
	mem := make([]byte, 0x40)
	m := NewRegion(mem)

	m.Write8(LSR, 0xff)
	for i, b := range mem {
		if Reg(i) != LSR && b != 0 {
			t.Errorf("byte 0x%02x touched by a single-byte write to LSR", i)
		}
	}
}
