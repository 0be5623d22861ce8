// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"fmt"
)

// Pointer selects a register on the device. It is the first byte of every
// bus transaction.
type Pointer byte

const (
	// PointerConfiguration selects the 16 bit configuration register.
	PointerConfiguration Pointer = 0b0001
	// PointerUpperAlert selects the T_UPPER alert boundary.
	PointerUpperAlert Pointer = 0b0010
	// PointerLowerAlert selects the T_LOWER alert boundary.
	PointerLowerAlert Pointer = 0b0011
	// PointerCriticalAlert selects the T_CRIT critical limit.
	PointerCriticalAlert Pointer = 0b0100
	// PointerAmbient selects the ambient temperature register.
	PointerAmbient Pointer = 0b0101
	// PointerManufacturerID selects the manufacturer ID register.
	PointerManufacturerID Pointer = 0b0110
	// PointerDeviceID selects the device ID and revision register.
	PointerDeviceID Pointer = 0b0111
	// PointerResolution selects the 8 bit resolution register.
	PointerResolution Pointer = 0b1000

	maxPointer = PointerResolution
	maxLength  = 2
)

var pointerNames = map[Pointer]string{
	PointerConfiguration:  "CONFIG",
	PointerUpperAlert:     "T_UPPER",
	PointerLowerAlert:     "T_LOWER",
	PointerCriticalAlert:  "T_CRIT",
	PointerAmbient:        "T_A",
	PointerManufacturerID: "MANUFACTURER_ID",
	PointerDeviceID:       "DEVICE_ID",
	PointerResolution:     "RESOLUTION",
}

func (p Pointer) String() string {
	if s, ok := pointerNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Pointer(%#x)", byte(p))
}

// Register is the storage cell exchanged with the sensor. It is one or two
// bytes wide, stored in transmission (big endian) order.
//
// The zero value is not usable; create registers with NewRegister or with one
// of the typed constructors.
type Register struct {
	ptr    Pointer
	buf    [maxLength]byte
	length uint8
}

// NewRegister returns a zero filled register.
//
// It panics if ptr is 0 or beyond the last register of the device, or if
// length is not 1 or 2.
func NewRegister(ptr Pointer, length int) Register {
	if ptr == 0 || ptr > maxPointer {
		panic(fmt.Sprintf("mcp9808reg: invalid register pointer %#x", byte(ptr)))
	}
	if length < 1 || length > maxLength {
		panic(fmt.Sprintf("mcp9808reg: invalid register length %d", length))
	}
	return Register{ptr: ptr, length: uint8(length)}
}

// Pointer returns the register selector.
func (r *Register) Pointer() Pointer {
	return r.ptr
}

// Len returns the register width in bytes.
func (r *Register) Len() int {
	return int(r.length)
}

// Bytes returns the stored bytes, most significant first. The returned slice
// aliases the register.
func (r *Register) Bytes() []byte {
	return r.buf[:r.length]
}

// Load replaces the register content with b. It returns a SizeMismatchError
// and leaves the register untouched when len(b) differs from the register
// width.
func (r *Register) Load(b []byte) error {
	if len(b) != int(r.length) {
		return &SizeMismatchError{Pointer: r.ptr, Want: int(r.length), Got: len(b)}
	}
	copy(r.buf[:], b)
	return nil
}

// locate translates a datasheet bit offset into a byte index and a mask.
func (r *Register) locate(offset int) (int, byte) {
	if offset < 0 || offset >= int(r.length)*8 {
		panic(fmt.Sprintf("mcp9808reg: bit offset %d out of range for %d byte register %s", offset, r.length, r.ptr))
	}
	return int(r.length) - 1 - offset/8, 1 << (offset % 8)
}

// Bit returns the bit at the datasheet offset. It panics if offset is not
// within [0, Len()*8).
func (r *Register) Bit(offset int) bool {
	i, mask := r.locate(offset)
	return r.buf[i]&mask != 0
}

// SetBit changes the bit at the datasheet offset, leaving every other bit
// alone. It panics if offset is not within [0, Len()*8).
func (r *Register) SetBit(offset int, v bool) {
	i, mask := r.locate(offset)
	if v {
		r.buf[i] |= mask
	} else {
		r.buf[i] &^= mask
	}
}

// field returns width bits starting at the datasheet offset.
func (r *Register) field(offset, width int) uint8 {
	var v uint8
	for i := width - 1; i >= 0; i-- {
		v <<= 1
		if r.Bit(offset + i) {
			v |= 1
		}
	}
	return v
}

func (r *Register) setField(offset, width int, v uint8) {
	for i := 0; i < width; i++ {
		r.SetBit(offset+i, v&(1<<i) != 0)
	}
}

// MSB returns the first stored byte. On a 1 byte register it is the only one.
func (r *Register) MSB() byte {
	return r.buf[0]
}

// SetMSB replaces the first stored byte.
func (r *Register) SetMSB(b byte) {
	r.buf[0] = b
}

// LSB returns the second stored byte. ok is false for 1 byte registers.
func (r *Register) LSB() (b byte, ok bool) {
	if r.length < 2 {
		return 0, false
	}
	return r.buf[1], true
}

// SetLSB replaces the second stored byte. It panics on a 1 byte register.
func (r *Register) SetLSB(b byte) {
	if r.length < 2 {
		panic(fmt.Sprintf("mcp9808reg: register %s has no low byte", r.ptr))
	}
	r.buf[1] = b
}

// Uint16 returns the register as a big endian word, or the zero extended byte
// of a 1 byte register.
func (r *Register) Uint16() uint16 {
	if r.length < 2 {
		return uint16(r.buf[0])
	}
	return uint16(r.buf[0])<<8 | uint16(r.buf[1])
}

func (r *Register) setUint16(v uint16) {
	r.buf[0] = byte(v >> 8)
	r.buf[1] = byte(v)
}

func (r *Register) String() string {
	if r.length < 2 {
		return fmt.Sprintf("%s[%#02x]", r.ptr, r.buf[0])
	}
	return fmt.Sprintf("%s[%#04x]", r.ptr, r.Uint16())
}
