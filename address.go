// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808

import (
	"fmt"
)

// defaultAddr is the bus address with A2, A1 and A0 tied low.
const defaultAddr uint16 = 0b1_1000

// SlaveAddress is the bus address selected by the A2, A1 and A0 pin straps.
// The pins set the three least significant address bits.
//
// The zero value is DefaultAddress.
type SlaveAddress struct {
	A2, A1, A0 bool
}

// DefaultAddress is the address of a device with all address pins low.
var DefaultAddress = SlaveAddress{}

// ParseAddress returns the SlaveAddress matching a 7 bit bus address. Only
// 0x18 to 0x1f can be selected with the pin straps.
func ParseAddress(addr uint16) (SlaveAddress, error) {
	if addr&^0b111 != defaultAddr {
		return SlaveAddress{}, fmt.Errorf("mcp9808: address %#x can't be strapped, expected 0x18-0x1f", addr)
	}
	return SlaveAddress{A2: addr&0b100 != 0, A1: addr&0b010 != 0, A0: addr&0b001 != 0}, nil
}

// Addr returns the resolved 7 bit address.
func (s SlaveAddress) Addr() uint16 {
	a := defaultAddr
	if s.A2 {
		a |= 0b100
	}
	if s.A1 {
		a |= 0b010
	}
	if s.A0 {
		a |= 0b001
	}
	return a
}

// Equal reports whether both values resolve to the same bus address.
func (s SlaveAddress) Equal(o SlaveAddress) bool {
	return s.Addr() == o.Addr()
}

func (s SlaveAddress) String() string {
	return fmt.Sprintf("%#x", s.Addr())
}
