package vuart

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// fillerByte is what gets written to THR whenever the holding register is
// empty, to keep the host side supplied with traffic.
const fillerByte = 'y'

// Stats counts the bytes moved by a poll run. Monotonic, reset per run.
type Stats struct {
	Transmitted uint64
	Received    uint64
}

// Poller busy-polls the line-status register, moving one byte in each
// direction per iteration when the corresponding readiness bit is set, and
// logs stall/resume transitions with boot-relative timestamps.
type Poller struct {
	Dev Accessor
	Cfg Config
	Out io.Writer // raw received bytes
	Log io.Writer // diagnostic log lines

	// Now returns the timestamp used for transition logging. Left nil it
	// reads CLOCK_BOOTTIME.
	Now func() (unix.Timespec, error)
}

func boottime() (unix.Timespec, error) {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts)
	return ts, err
}

func (p *Poller) logTransition(what string, i int, lsr uint8) error {
	now := p.Now
	if now == nil {
		now = boottime
	}

	ts, err := now()
	if err != nil {
		return fmt.Errorf("can't read CLOCK_BOOTTIME: %w", err)
	}

	fmt.Fprintf(p.Log, "[%7d.%06d] VUART %s at %d, LSR: 0x%02x\n",
		ts.Sec, ts.Nsec/1000, what, i, lsr)
	return nil
}

// Run polls for iters iterations, or indefinitely if iters is negative; the
// iteration index keeps counting either way so transition logs on an
// unbounded run still carry a sample number. The loop never sleeps and has
// no cancellation path. A clock read failure is the only error and aborts
// the run immediately.
func (p *Poller) Run(iters int) (Stats, error) {
	var st Stats

	stalled := false
	for i := 0; iters < 0 || i < iters; i++ {
		// Side effect: this read clears the latched LSR error bits.
		lsr := p.Dev.Read8(LSR)

		if lsr&(LSRDR|LSRTHRE) != 0 {
			if stalled {
				if err := p.logTransition("resumed", i, lsr); err != nil {
					return st, err
				}
			}
			stalled = false
		} else {
			if !stalled {
				if err := p.logTransition("stalled", i, lsr); err != nil {
					return st, err
				}
			}
			stalled = true
		}

		if !p.Cfg.IgnoreTx && lsr&LSRTHRE != 0 {
			p.Dev.Write8(THR, fillerByte)
			st.Transmitted++
		}

		if !p.Cfg.IgnoreRx && lsr&LSRDR != 0 {
			p.Out.Write([]byte{p.Dev.Read8(RBR)})
			st.Received++
		}
	}

	return st, nil
}
