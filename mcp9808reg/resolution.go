// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// ResolutionVal is the ambient temperature conversion resolution. Higher codes
// are finer and slower.
type ResolutionVal uint8

const (
	Res0_5C    ResolutionVal = 0b00
	Res0_25C   ResolutionVal = 0b01
	Res0_125C  ResolutionVal = 0b10
	Res0_0625C ResolutionVal = 0b11 // power-up default
)

var resolutions = [...]struct {
	name       string
	step       float64
	milli      int32
	conversion time.Duration
}{
	Res0_5C:    {"0.5°C", 0.5, 500, 30 * time.Millisecond},
	Res0_25C:   {"0.25°C", 0.25, 250, 65 * time.Millisecond},
	Res0_125C:  {"0.125°C", 0.125, 125, 130 * time.Millisecond},
	Res0_0625C: {"0.0625°C", 0.0625, 0, 250 * time.Millisecond},
}

// ParseResolution maps a raw register code to a ResolutionVal.
func ParseResolution(code byte) (ResolutionVal, error) {
	if int(code) >= len(resolutions) {
		return 0, &InvalidResolutionError{Code: code}
	}
	return ResolutionVal(code), nil
}

func (r ResolutionVal) valid() bool {
	return int(r) < len(resolutions)
}

func (r ResolutionVal) mustValid() {
	if !r.valid() {
		panic(fmt.Sprintf("mcp9808reg: invalid resolution %d", uint8(r)))
	}
}

func (r ResolutionVal) String() string {
	if !r.valid() {
		return fmt.Sprintf("ResolutionVal(%d)", uint8(r))
	}
	return resolutions[r].name
}

// Step returns the size of one conversion step in °C.
func (r ResolutionVal) Step() float64 {
	r.mustValid()
	return resolutions[r].step
}

// Precision returns the size of one conversion step.
func (r ResolutionVal) Precision() physic.Temperature {
	r.mustValid()
	return 500 * physic.MilliKelvin >> r
}

// ConversionTime returns the typical time the device needs for one
// conversion at this resolution.
func (r ResolutionVal) ConversionTime() time.Duration {
	r.mustValid()
	return resolutions[r].conversion
}

// fractionShift is the number of fractional bits ignored at this resolution.
func (r ResolutionVal) fractionShift() uint {
	return uint(Res0_0625C - r)
}

// Resolution is the 8 bit RESOLUTION register.
type Resolution struct {
	reg Register
}

// NewResolution returns an empty RESOLUTION register.
func NewResolution() Resolution {
	return Resolution{reg: NewRegister(PointerResolution, 1)}
}

// Register implements Readable.
func (r *Resolution) Register() *Register { return &r.reg }

func (r *Resolution) writable() {}

// Resolution decodes the register. Any content other than a valid 2 bit code
// returns an InvalidResolutionError.
func (r *Resolution) Resolution() (ResolutionVal, error) {
	return ParseResolution(r.reg.MSB())
}

// SetResolution stores v. It panics if v is not one of the defined values.
func (r *Resolution) SetResolution(v ResolutionVal) {
	v.mustValid()
	r.reg.SetMSB(byte(v))
}

var _ Writable = &Resolution{}
