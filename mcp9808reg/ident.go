// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

const (
	// ManufacturerMicrochip is the content of the manufacturer ID register.
	ManufacturerMicrochip uint16 = 0x0054
	// DeviceMCP9808 is the upper byte of the device ID register.
	DeviceMCP9808 byte = 0x04
)

// ManufacturerID is the read-only manufacturer ID register.
type ManufacturerID struct {
	reg Register
}

// NewManufacturerID returns an empty manufacturer ID register.
func NewManufacturerID() ManufacturerID {
	return ManufacturerID{reg: NewRegister(PointerManufacturerID, 2)}
}

// Register implements Readable.
func (m *ManufacturerID) Register() *Register { return &m.reg }

// ID returns the 16 bit manufacturer code.
func (m *ManufacturerID) ID() uint16 {
	return m.reg.Uint16()
}

// IsValidManufacturer reports whether the register identifies Microchip.
func (m *ManufacturerID) IsValidManufacturer() bool {
	return m.ID() == ManufacturerMicrochip
}

// DeviceID is the read-only device ID register: the device ID in the upper
// byte, the silicon revision in the lower one.
type DeviceID struct {
	reg Register
}

// NewDeviceID returns an empty device ID register.
func NewDeviceID() DeviceID {
	return DeviceID{reg: NewRegister(PointerDeviceID, 2)}
}

// Register implements Readable.
func (d *DeviceID) Register() *Register { return &d.reg }

// ID returns the device ID, the upper byte.
func (d *DeviceID) ID() byte {
	return d.reg.MSB()
}

// Revision returns the silicon revision, the lower byte.
func (d *DeviceID) Revision() byte {
	b, _ := d.reg.LSB()
	return b
}

// IsValidDevice reports whether the register identifies an MCP9808.
func (d *DeviceID) IsValidDevice() bool {
	return d.ID() == DeviceMCP9808
}

var (
	_ Readable = &ManufacturerID{}
	_ Readable = &DeviceID{}
)
