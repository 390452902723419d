package vuart

import (
	"fmt"
	"io"
)

// dumpable lists the registers shown by DumpRegs, in dump order. RBR and SCR
// are left out: reading RBR pops the receive FIFO.
var dumpable = []struct {
	name string
	reg  Reg
}{
	{"IER", IER},
	{"IIR", IIR},
	{"LCR", LCR},
	{"MCR", MCR},
	{"LSR", LSR},
	{"MSR", MSR},
	{"GCRA", GCRA},
	{"GCRB", GCRB},
	{"VARL", VARL},
	{"VARH", VARH},
	{"GCRE", GCRE},
	{"GCRF", GCRF},
	{"GCRG", GCRG},
	{"GCRH", GCRH},
}

// DumpRegs writes one line per named register to w, hex byte value each.
func DumpRegs(dev Accessor, w io.Writer) {
	for _, d := range dumpable {
		fmt.Fprintf(w, "\t%s:\t0x%02x\n", d.name, dev.Read8(d.reg))
	}
}

// ReportStats writes the final byte counters to w, each only for a path that
// was actually polled.
func ReportStats(w io.Writer, cfg Config, st Stats) {
	if !cfg.IgnoreTx {
		fmt.Fprintf(w, "Transmitted:\t%d\n", st.Transmitted)
	}
	if !cfg.IgnoreRx {
		fmt.Fprintf(w, "Received:\t%d\n", st.Received)
	}
}
