package vuart

// Config selects which setup steps and polling paths to run. The flags are
// fixed for the lifetime of the run; each one independently disables a single
// configuration step or polling sub-action.
type Config struct {
	AssumeDTR     bool // MCR[DTR] and MCR[RTS] are already set appropriately
	AssumeEnabled bool // the VUART is enabled and configured not to drain the Rx FIFO
	AssumeFIFOs   bool // the FIFOs are configured and do not need resetting
	IgnoreRx      bool // ignore LSR[DR] and do not read RBR
	IgnoreTx      bool // ignore LSR[THRE] and do not write THR
}

// ierValue computes the interrupt-enable register value to write: start from
// the current value, clear the bits for the paths we poll ourselves, and if
// no data interrupt remains enabled drop the whole register to zero,
// discarding residual ELSI/EDSSI bits along the way.
func ierValue(cur uint8, cfg Config) uint8 {
	ier := cur
	if !cfg.IgnoreTx {
		ier &^= IERETBEI
	}
	if !cfg.IgnoreRx {
		ier &^= IERERBFI
	}
	if ier&(IERETBEI|IERERBFI) == 0 {
		ier = 0
	}
	return ier
}

// Configure applies the one-time device setup. Each step is skipped when the
// corresponding assume flag is set; with everything assumed this only
// rewrites IER.
func Configure(dev Accessor, cfg Config) {
	// Enable the VUART. Direct overwrite, not read-modify-write: the cork
	// bit must go in together with the enable.
	if !cfg.AssumeEnabled {
		dev.Write8(GCRA, GCRAVUARTEn|GCRAHTxCork)
	}

	dev.Write8(IER, ierValue(dev.Read8(IER), cfg))

	// Reset and enable the FIFOs.
	if !cfg.AssumeFIFOs {
		dev.Write8(FCR, fcrResetEnable)
	}

	// Indicate we're ready.
	if !cfg.AssumeDTR {
		dev.Write8(MCR, mcrReady)
	}
}
