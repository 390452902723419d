// Exercises the memory-mapped virtual UART of an ASPEED BMC from userspace.
// Busy-polls the line status register, so expect a pegged CPU.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/yath/uuart/vuart"
)

var (
	vuartFlag         = flag.Int("vuart", 2, "VUART instance to drive (1 or 2).")
	assumeDTRFlag     = flag.Bool("assume_dtr", false, "Assume MCR[DTR] and MCR[RTS] are set appropriately.")
	assumeEnabledFlag = flag.Bool("assume_enabled", false, "Assume the UART is enabled and configured to not drain the Rx FIFO.")
	assumeFIFOsFlag   = flag.Bool("assume_fifos", false, "Assume the FIFOs are configured and do not need resetting.")
	ignoreRxFlag      = flag.Bool("ignore_rx", false, "Ignore LSR[DR] and do not read RBR.")
	ignoreTxFlag      = flag.Bool("ignore_tx", false, "Ignore LSR[THRE] and do not write THR.")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] [iterations]\n\n"+
			"Dumps the VUART registers and exits when no iteration count is\n"+
			"given. A negative count polls forever.\n\n",
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	var base int64
	switch *vuartFlag {
	case 1:
		base = vuart.VUART1Base
	case 2:
		base = vuart.VUART2Base
	default:
		log.Fatalf("Invalid --vuart %d, want 1 or 2", *vuartFlag)
	}

	dev, err := vuart.Open(base)
	if err != nil {
		log.Fatalf("Can't map VUART registers: %v", err)
	}
	defer dev.Close()

	fmt.Fprintln(os.Stderr, "Startup configuration")
	vuart.DumpRegs(dev, os.Stderr)

	// No iteration count: inspect only, don't touch the device.
	if flag.NArg() == 0 {
		return
	}

	iters, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("Invalid iteration count %q: %v", flag.Arg(0), err)
	}

	cfg := vuart.Config{
		AssumeDTR:     *assumeDTRFlag,
		AssumeEnabled: *assumeEnabledFlag,
		AssumeFIFOs:   *assumeFIFOsFlag,
		IgnoreRx:      *ignoreRxFlag,
		IgnoreTx:      *ignoreTxFlag,
	}
	vuart.Configure(dev, cfg)

	fmt.Fprintln(os.Stderr, "Initialised configuration")
	vuart.DumpRegs(dev, os.Stderr)

	fmt.Fprintf(os.Stderr, "Running for %d iterations\n", iters)
	p := &vuart.Poller{Dev: dev, Cfg: cfg, Out: os.Stdout, Log: os.Stderr}
	st, err := p.Run(iters)
	if err != nil {
		log.Fatalf("Poll loop aborted: %v", err)
	}

	fmt.Fprintln(os.Stderr, "Terminating configuration")
	vuart.DumpRegs(dev, os.Stderr)

	vuart.ReportStats(os.Stderr, cfg, st)
}
