// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3/physic"
)

// Temperature registers share one layout, datasheet numbering:
//
//	bit 15-13  flags (ambient register only, read as 0 otherwise)
//	bit 12     sign
//	bit 11-4   integer °C
//	bit 3-0    fraction in 0.0625°C steps
//
// The value is a 13 bit two's complement number of sixteenths of a degree.
// The threshold registers only implement bits 12-2 so writes are limited to
// 0.25°C steps whatever the conversion resolution is.
const (
	maskTemperature = 0x1fff
	bitSign         = 0x1000

	// sixteenths of a degree
	rangeLimit = 256 * 16

	bitBelowLower    = 13
	bitAboveUpper    = 14
	bitAboveCritical = 15

	sixteenth = 62_500 * physic.MicroKelvin
)

// TemperatureReader is implemented by every temperature bearing register.
type TemperatureReader interface {
	Readable
	Celsius(res ResolutionVal) float64
	MilliCelsius(res ResolutionVal) (int32, error)
	Temperature(res ResolutionVal) physic.Temperature
	Raw() uint16
}

// TemperatureWriter is implemented by the alert threshold registers.
type TemperatureWriter interface {
	TemperatureReader
	Writable
	SetCelsius(v float64) error
	SetMilliCelsius(v int32) error
	SetTemperature(t physic.Temperature) error
}

// temperature holds the codec shared by Ambient and Threshold.
type temperature struct {
	reg Register
}

// Register implements Readable.
func (t *temperature) Register() *Register { return &t.reg }

// Raw returns the 16 bit register content, flags included.
func (t *temperature) Raw() uint16 {
	return t.reg.Uint16()
}

// parts splits the register into the signed integer degrees and the 4 bit
// fraction nibble, ignoring the flag bits.
func (t *temperature) parts() (int32, uint8) {
	high := t.reg.MSB() & 0x1f
	low, _ := t.reg.LSB()
	whole := int32(high&0x0f)*16 + int32(low)/16
	if high&(bitSign>>8) != 0 {
		whole -= 256
	}
	return whole, low & 0x0f
}

// fraction returns the number of res steps in the fraction nibble.
func fraction(nibble uint8, res ResolutionVal) int32 {
	res.mustValid()
	return int32(nibble >> res.fractionShift())
}

// Celsius decodes the register in °C, keeping only the fractional bits that
// are significant at res.
func (t *temperature) Celsius(res ResolutionVal) float64 {
	whole, nibble := t.parts()
	return float64(whole) + float64(fraction(nibble, res))*resolutions[res].step
}

// MilliCelsius decodes the register in m°C. It returns ErrMilliPrecision for
// Res0_0625C.
func (t *temperature) MilliCelsius(res ResolutionVal) (int32, error) {
	whole, nibble := t.parts()
	steps := fraction(nibble, res)
	if res == Res0_0625C {
		return 0, ErrMilliPrecision
	}
	return whole*1000 + steps*resolutions[res].milli, nil
}

// Temperature decodes the register with exact integer arithmetic.
func (t *temperature) Temperature(res ResolutionVal) physic.Temperature {
	whole, nibble := t.parts()
	steps := fraction(nibble, res)
	sixteenths := whole*16 + steps<<res.fractionShift()
	return physic.ZeroCelsius + physic.Temperature(sixteenths)*sixteenth
}

// encode stores a magnitude expressed in sixteenths of a degree. Only the two
// most significant fractional bits are kept.
func (t *temperature) encode(sixteenths uint16, negative bool) {
	sixteenths &^= 0b11
	if negative {
		sixteenths = -sixteenths
	}
	t.reg.setUint16(sixteenths & maskTemperature)
}

func (t *temperature) setCelsius(v float64) error {
	if math.IsNaN(v) || math.Abs(v) >= rangeLimit/16 {
		return fmt.Errorf("%w: %g°C", ErrOutOfRange, v)
	}
	t.encode(uint16(math.Abs(v)*16), v < 0)
	return nil
}

func (t *temperature) setMilliCelsius(v int32) error {
	if v <= -rangeLimit/16*1000 || v >= rangeLimit/16*1000 {
		return fmt.Errorf("%w: %dm°C", ErrOutOfRange, v)
	}
	m := v
	if m < 0 {
		m = -m
	}
	t.encode(uint16(m*16/1000), v < 0)
	return nil
}

// Ambient is the read-only T_A register. Besides the temperature it carries
// three comparator flags which the device updates on every conversion.
type Ambient struct {
	temperature
}

// NewAmbient returns an empty T_A register.
func NewAmbient() Ambient {
	return Ambient{temperature{reg: NewRegister(PointerAmbient, 2)}}
}

// BelowLower reports T_A < T_LOWER.
func (a *Ambient) BelowLower() bool { return a.reg.Bit(bitBelowLower) }

// AboveUpper reports T_A > T_UPPER.
func (a *Ambient) AboveUpper() bool { return a.reg.Bit(bitAboveUpper) }

// AboveCritical reports T_A >= T_CRIT.
func (a *Ambient) AboveCritical() bool { return a.reg.Bit(bitAboveCritical) }

// Threshold is one of the T_UPPER, T_LOWER or T_CRIT alert limits.
type Threshold struct {
	temperature
}

// NewUpperAlert returns an empty T_UPPER register.
func NewUpperAlert() Threshold {
	return Threshold{temperature{reg: NewRegister(PointerUpperAlert, 2)}}
}

// NewLowerAlert returns an empty T_LOWER register.
func NewLowerAlert() Threshold {
	return Threshold{temperature{reg: NewRegister(PointerLowerAlert, 2)}}
}

// NewCriticalAlert returns an empty T_CRIT register.
func NewCriticalAlert() Threshold {
	return Threshold{temperature{reg: NewRegister(PointerCriticalAlert, 2)}}
}

func (t *Threshold) writable() {}

// SetCelsius encodes v, truncated toward zero to a multiple of 0.25°C. It
// returns ErrOutOfRange if |v| >= 256 or v is NaN.
func (t *Threshold) SetCelsius(v float64) error {
	return t.setCelsius(v)
}

// SetMilliCelsius encodes v, truncated toward zero to a multiple of 250m°C.
// It returns ErrOutOfRange if |v| >= 256000.
func (t *Threshold) SetMilliCelsius(v int32) error {
	return t.setMilliCelsius(v)
}

// SetTemperature encodes temp the same way SetCelsius does.
func (t *Threshold) SetTemperature(temp physic.Temperature) error {
	d := temp - physic.ZeroCelsius
	negative := d < 0
	if negative {
		d = -d
	}
	if d >= rangeLimit*sixteenth {
		return fmt.Errorf("%w: %s", ErrOutOfRange, temp)
	}
	t.encode(uint16(d/sixteenth), negative)
	return nil
}

var (
	_ TemperatureReader = &Ambient{}
	_ TemperatureWriter = &Threshold{}
)
