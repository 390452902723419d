package vuart

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

const devMem = "/dev/mem"

// Device is a VUART register block mapped from physical memory. Close tears
// the mapping down once the caller is done polling.
type Device struct {
	*Region
	f *os.File
	m mmap.MMap
}

// Open maps one page of /dev/mem at the given physical base address
// (VUART1Base or VUART2Base) read/write and returns the device handle.
func Open(base int64) (*Device, error) {
	f, err := os.OpenFile(devMem, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", devMem, err)
	}

	m, err := mmap.MapRegion(f, os.Getpagesize(), mmap.RDWR, 0, base)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("can't map %s at 0x%08x: %w", devMem, base, err)
	}

	return &Device{Region: NewRegion(m), f: f, m: m}, nil
}

// Close unmaps the register block and closes the underlying file.
func (d *Device) Close() error {
	err := d.m.Unmap()
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}
