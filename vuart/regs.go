// Package vuart drives the memory-mapped virtual UART of ASPEED BMC SoCs
// from userspace, for bring-up diagnostics.
package vuart

// Physical base addresses of the two VUART register blocks.
const (
	VUART1Base = 0x1e787000
	VUART2Base = 0x1e788000
)

// Reg is a byte offset into the VUART register block.
type Reg uintptr

// Register offsets. The block is laid out like a 16550 with the ASPEED
// global control registers appended; several offsets are shared between
// registers depending on access direction and LCR[DLAB].
const (
	RBR  Reg = 0x00 // receive buffer (R)
	THR  Reg = 0x00 // transmit holding (W)
	DLL  Reg = 0x00 // divisor latch low, DLAB=1
	IER  Reg = 0x04 // interrupt enable
	DLM  Reg = 0x04 // divisor latch high, DLAB=1
	IIR  Reg = 0x08 // interrupt identification (R)
	FCR  Reg = 0x08 // FIFO control (W)
	LCR  Reg = 0x0c // line control
	MCR  Reg = 0x10 // modem control
	LSR  Reg = 0x14 // line status
	MSR  Reg = 0x18 // modem status
	SCR  Reg = 0x1c // scratch
	GCRA Reg = 0x20 // global control A
	GCRB Reg = 0x24 // global control B
	VARL Reg = 0x28 // virtual address low
	VARH Reg = 0x2c // virtual address high
	GCRE Reg = 0x30
	GCRF Reg = 0x34
	GCRG Reg = 0x38
	GCRH Reg = 0x3c
)

// IER bits.
const (
	IERERBFI = 1 << 0 // enable received-data-available interrupt
	IERETBEI = 1 << 1 // enable transmit-holding-empty interrupt
	IERELSI  = 1 << 2 // enable line-status interrupt
	IEREDSSI = 1 << 3 // enable modem-status interrupt
)

// LSR bits. Reading LSR clears the latched error bits.
const (
	LSRDR   = 1 << 0 // data ready
	LSROE   = 1 << 1 // overrun error
	LSRPE   = 1 << 2 // parity error
	LSRFE   = 1 << 3 // framing error
	LSRBI   = 1 << 4 // break interrupt
	LSRTHRE = 1 << 5 // transmit holding register empty
	LSRTEMT = 1 << 6 // transmitter empty
	LSRRFE  = 1 << 7 // error in receive FIFO
)

// GCRA bits.
const (
	GCRAVUARTEn  = 1 << 0      // enable the VUART
	GCRASIRQPol  = 1 << 1      // serial IRQ polarity
	GCRASTimeout = 1<<2 | 1<<3 // SIRQ timeout select
	GCRAHLoop    = 1 << 4      // host loopback
	GCRAHTxCork  = 1 << 5      // cork host Tx until FIFO fills
	GCRAHRFT     = 1<<6 | 1<<7 // host receive FIFO trigger
)

// Control values written during configuration.
const (
	fcrResetEnable = 0x07 // enable FIFOs, reset Rx and Tx FIFO
	mcrReady       = 0x0b // DTR | RTS | OUT2
)
