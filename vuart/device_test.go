package vuart

// fakeDev is a scripted register block for tests. LSR reads walk the lsr
// script (the last value repeats), RBR reads consume the rbr script, and all
// other registers behave like plain memory. Every write is recorded in
// order.
type fakeDev struct {
	lsr        []uint8
	lsrReads   int
	panicAfter int // panic once this many LSR reads happened, 0 disables

	rbr  []uint8
	regs map[Reg]uint8

	writes []regWrite
}

type regWrite struct {
	reg Reg
	val uint8
}

func newFakeDev() *fakeDev {
	return &fakeDev{regs: make(map[Reg]uint8)}
}

func (d *fakeDev) Read8(r Reg) uint8 {
	switch r {
	case LSR:
		if d.panicAfter > 0 && d.lsrReads >= d.panicAfter {
			panic("LSR read budget exhausted")
		}
		if len(d.lsr) == 0 {
			d.lsrReads++
			return d.regs[LSR]
		}
		i := d.lsrReads
		if i >= len(d.lsr) {
			i = len(d.lsr) - 1
		}
		d.lsrReads++
		return d.lsr[i]
	case RBR:
		if len(d.rbr) == 0 {
			return 0
		}
		v := d.rbr[0]
		d.rbr = d.rbr[1:]
		return v
	}
	return d.regs[r]
}

func (d *fakeDev) Write8(r Reg, v uint8) {
	d.writes = append(d.writes, regWrite{r, v})
	d.regs[r] = v
}

// wrote reports whether any recorded write hit the given register.
func (d *fakeDev) wrote(r Reg) bool {
	for _, w := range d.writes {
		if w.reg == r {
			return true
		}
	}
	return false
}
