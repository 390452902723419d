// Pumps traffic into the host-side tty of the VUART bridge so the poller on
// the BMC end has something to observe.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jacobsa/go-serial/serial"
)

var (
	serialPortFlag = flag.String("serial_port", "/dev/ttyS0", "Serial port to use.")
	baudRateFlag   = flag.Uint("baud_rate", 115200, "Baud rate to use.")

	patternFlag = flag.String("pattern", "uartpump\n", "Bytes to write per round.")
	roundsFlag  = flag.Int("rounds", 0, "Number of write/read rounds, 0 for infinite.")
	delayFlag   = flag.Duration("delay", 100*time.Millisecond, "Delay between rounds.")
)

func openSerialPort(portName string, baudRate uint) (io.ReadWriteCloser, error) {
	oo := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		RTSCTSFlowControl:     false,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100, // ms
	}
	log.Printf("Opening serial port with options %+v", oo)

	s, err := serial.Open(oo)
	if err != nil {
		return nil, fmt.Errorf("can't open serial port: %v", err)
	}

	return s, nil
}

func main() {
	flag.Parse()

	sp, err := openSerialPort(*serialPortFlag, *baudRateFlag)
	if err != nil {
		log.Fatalf("Can't open serial port: %v", err)
	}
	defer sp.Close()

	pattern := []byte(*patternFlag)
	buf := make([]byte, 4096)
	var written, read uint64

	for round := 0; *roundsFlag <= 0 || round < *roundsFlag; round++ {
		if _, err := sp.Write(pattern); err != nil {
			log.Fatalf("Writing to serial port: %v", err)
		}
		written += uint64(len(pattern))

		n, err := sp.Read(buf)
		if err != nil && err != io.EOF {
			log.Fatalf("Reading from serial port: %v", err)
		}
		if n > 0 {
			log.Printf("received %d bytes: % 02x", n, buf[:n])
			read += uint64(n)
		}

		time.Sleep(*delayFlag)
	}

	log.Printf("Done, wrote %d bytes, read %d bytes", written, read)
}
