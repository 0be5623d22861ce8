// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gobotbus

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"gobot.io/x/gobot/sysfs"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Device is the subset of a gobot sysfs I²C device used by Bus.
type Device interface {
	io.ReadWriteCloser
	SetAddress(address int) error
}

// Bus serializes transactions on a Device and implements i2c.BusCloser.
type Bus struct {
	mu   sync.Mutex
	dev  Device
	name string
	addr int
}

// Open opens the I²C character device at path, e.g. "/dev/i2c-1".
func Open(path string) (*Bus, error) {
	dev, err := sysfs.NewI2cDevice(path)
	if err != nil {
		return nil, fmt.Errorf("gobotbus: %w", err)
	}
	return New(dev, path), nil
}

// New wraps an already opened device. name is returned by String.
func New(dev Device, name string) *Bus {
	return &Bus{dev: dev, name: name, addr: -1}
}

// Tx writes w then reads len(r) bytes from the device at addr. Either may be
// empty.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7f {
		return fmt.Errorf("gobotbus: invalid 7 bit address %#x", addr)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dev == nil {
		return errors.New("gobotbus: bus closed")
	}
	if int(addr) != b.addr {
		if err := b.dev.SetAddress(int(addr)); err != nil {
			b.addr = -1
			return fmt.Errorf("gobotbus: set address %#x: %w", addr, err)
		}
		b.addr = int(addr)
	}
	if len(w) != 0 {
		if n, err := b.dev.Write(w); err != nil {
			return fmt.Errorf("gobotbus: write: %w", err)
		} else if n != len(w) {
			return fmt.Errorf("gobotbus: short write: %d of %d bytes", n, len(w))
		}
	}
	if len(r) != 0 {
		if _, err := io.ReadFull(b.dev, r); err != nil {
			return fmt.Errorf("gobotbus: read: %w", err)
		}
	}
	return nil
}

// SetSpeed is not supported; the bus speed is set by the kernel driver.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return fmt.Errorf("gobotbus: can't set speed to %s", f)
}

func (b *Bus) String() string {
	return b.name
}

// Close closes the underlying device. Subsequent transactions fail.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dev == nil {
		return nil
	}
	err := b.dev.Close()
	b.dev = nil
	return err
}

var _ i2c.BusCloser = &Bus{}
