// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func ambientFrom(t *testing.T, b ...byte) Ambient {
	t.Helper()
	a := NewAmbient()
	if err := a.Register().Load(b); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestReadSensorValue(t *testing.T) {
	a := ambientFrom(t, 0b00000001, 0b10010100)
	if c := a.Celsius(Res0_0625C); c != 25.25 {
		t.Errorf("Celsius()=%g expected 25.25", c)
	}
	m, err := a.MilliCelsius(Res0_125C)
	if err != nil {
		t.Fatal(err)
	}
	if m != 25250 {
		t.Errorf("MilliCelsius()=%d expected 25250", m)
	}
	if temp := a.Temperature(Res0_0625C); temp != physic.ZeroCelsius+25250*physic.MilliCelsius {
		t.Errorf("Temperature()=%s expected 25.25°C", temp)
	}
}

func TestDecodeResolution(t *testing.T) {
	// 0x01, 0x9f: 25°C + 15/16
	a := ambientFrom(t, 0x01, 0x9f)
	for _, test := range []struct {
		res   ResolutionVal
		want  float64
		milli int32
	}{
		{Res0_5C, 25.5, 25500},
		{Res0_25C, 25.75, 25750},
		{Res0_125C, 25.875, 25875},
		{Res0_0625C, 25.9375, 0},
	} {
		if c := a.Celsius(test.res); c != test.want {
			t.Errorf("%s: Celsius()=%g expected %g", test.res, c, test.want)
		}
		if want := physic.ZeroCelsius + physic.Temperature(test.want*float64(physic.Celsius)); a.Temperature(test.res) != want {
			t.Errorf("%s: Temperature()=%s expected %s", test.res, a.Temperature(test.res), want)
		}
		if test.res == Res0_0625C {
			continue
		}
		m, err := a.MilliCelsius(test.res)
		if err != nil {
			t.Fatal(err)
		}
		if m != test.milli {
			t.Errorf("%s: MilliCelsius()=%d expected %d", test.res, m, test.milli)
		}
	}
}

func TestMilliCelsiusFinestResolution(t *testing.T) {
	a := ambientFrom(t, 0x01, 0x94)
	if _, err := a.MilliCelsius(Res0_0625C); !errors.Is(err, ErrMilliPrecision) {
		t.Errorf("expected ErrMilliPrecision, got %v", err)
	}
}

func TestDecodeNegative(t *testing.T) {
	// -20.25°C in 13 bit two's complement: 8192 - 324 = 0x1ebc
	a := ambientFrom(t, 0x1e, 0xbc)
	if c := a.Celsius(Res0_25C); c != -20.25 {
		t.Errorf("Celsius()=%g expected -20.25", c)
	}
	m, err := a.MilliCelsius(Res0_25C)
	if err != nil {
		t.Fatal(err)
	}
	if m != -20250 {
		t.Errorf("MilliCelsius()=%d expected -20250", m)
	}
	if temp := a.Temperature(Res0_0625C); temp != physic.ZeroCelsius-20250*physic.MilliCelsius {
		t.Errorf("Temperature()=%s expected -20.25°C", temp)
	}

	// -0.0625°C
	a = ambientFrom(t, 0x1f, 0xff)
	if c := a.Celsius(Res0_0625C); c != -0.0625 {
		t.Errorf("Celsius()=%g expected -0.0625", c)
	}
}

func TestAmbientFlags(t *testing.T) {
	a := ambientFrom(t, 0x01, 0x94)
	offsets := []int{bitBelowLower, bitAboveUpper, bitAboveCritical}
	get := []func() bool{a.BelowLower, a.AboveUpper, a.AboveCritical}
	for i, offset := range offsets {
		a.Register().SetBit(offset, true)
		for j := range offsets {
			if got := get[j](); got != (j == i) {
				t.Errorf("after setting bit %d: flag %d=%t", offset, offsets[j], got)
			}
		}
		if c := a.Celsius(Res0_0625C); c != 25.25 {
			t.Errorf("flag %d changed the temperature: %g", offset, c)
		}
		a.Register().SetBit(offset, false)
	}

	// All flags set on a negative value.
	a = ambientFrom(t, 0xfe, 0xbc)
	if !a.BelowLower() || !a.AboveUpper() || !a.AboveCritical() {
		t.Error("expected all flags set")
	}
	if c := a.Celsius(Res0_25C); c != -20.25 {
		t.Errorf("Celsius()=%g expected -20.25", c)
	}
}

func TestSetCelsius(t *testing.T) {
	for _, test := range []struct {
		in        float64
		msb, lsb  byte
		want      float64
		wantMilli int32
	}{
		// Reference pattern from the datasheet, register 5-4.
		{90.0, 0b00000101, 0b10100000, 90, 90000},
		{90.75, 0b00000101, 0b10101100, 90.75, 90750},
		{90.25, 0b00000101, 0b10100100, 90.25, 90250},
		// Below 0.25°C granularity is dropped, whatever the resolution.
		{90.9375, 0b00000101, 0b10101100, 90.75, 90750},
		{0.1, 0, 0, 0, 0},
		{-20.25, 0x1e, 0xbc, -20.25, -20250},
		{-0.25, 0x1f, 0xfc, -0.25, -250},
		{255.75, 0x0f, 0xfc, 255.75, 255750},
		{-255.75, 0x10, 0x04, -255.75, -255750},
	} {
		th := NewUpperAlert()
		if err := th.SetCelsius(test.in); err != nil {
			t.Fatalf("SetCelsius(%g): %v", test.in, err)
		}
		lsb, _ := th.Register().LSB()
		if th.Register().MSB() != test.msb || lsb != test.lsb {
			t.Errorf("SetCelsius(%g) stored %#02x %#02x expected %#02x %#02x", test.in, th.Register().MSB(), lsb, test.msb, test.lsb)
		}
		if c := th.Celsius(Res0_25C); c != test.want {
			t.Errorf("SetCelsius(%g): Celsius()=%g expected %g", test.in, c, test.want)
		}
		m, err := th.MilliCelsius(Res0_25C)
		if err != nil {
			t.Fatal(err)
		}
		if m != test.wantMilli {
			t.Errorf("SetCelsius(%g): MilliCelsius()=%d expected %d", test.in, m, test.wantMilli)
		}
	}
}

func TestSetMilliCelsius(t *testing.T) {
	for _, test := range []struct {
		in       int32
		msb, lsb byte
	}{
		{90000, 0b00000101, 0b10100000},
		{90250, 0b00000101, 0b10100100},
		{90999, 0b00000101, 0b10101100},
		{-20250, 0x1e, 0xbc},
	} {
		th := NewCriticalAlert()
		if err := th.SetMilliCelsius(test.in); err != nil {
			t.Fatalf("SetMilliCelsius(%d): %v", test.in, err)
		}
		lsb, _ := th.Register().LSB()
		if th.Register().MSB() != test.msb || lsb != test.lsb {
			t.Errorf("SetMilliCelsius(%d) stored %#02x %#02x expected %#02x %#02x", test.in, th.Register().MSB(), lsb, test.msb, test.lsb)
		}
	}
}

func TestSetTemperature(t *testing.T) {
	th := NewLowerAlert()
	if err := th.SetTemperature(physic.ZeroCelsius + 90750*physic.MilliCelsius); err != nil {
		t.Fatal(err)
	}
	if th.Raw() != 0x05ac {
		t.Errorf("Raw()=%#x expected 0x05ac", th.Raw())
	}
	if err := th.SetTemperature(physic.ZeroCelsius - 20250*physic.MilliCelsius); err != nil {
		t.Fatal(err)
	}
	if th.Raw() != 0x1ebc {
		t.Errorf("Raw()=%#x expected 0x1ebc", th.Raw())
	}
	if err := th.SetTemperature(physic.ZeroCelsius + 256*physic.Celsius); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	th := NewUpperAlert()
	_ = th.SetCelsius(42)
	for _, v := range []float64{256, -256, 1000, math.NaN(), math.Inf(1)} {
		if err := th.SetCelsius(v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetCelsius(%g): expected ErrOutOfRange, got %v", v, err)
		}
	}
	for _, v := range []int32{256000, -256000, math.MaxInt32, math.MinInt32} {
		if err := th.SetMilliCelsius(v); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetMilliCelsius(%d): expected ErrOutOfRange, got %v", v, err)
		}
	}
	if c := th.Celsius(Res0_25C); c != 42 {
		t.Errorf("rejected value modified the register: %g", c)
	}
}

func TestRoundTrip(t *testing.T) {
	th := NewUpperAlert()
	for q := -1023; q <= 1023; q++ {
		want := float64(q) / 4
		if err := th.SetCelsius(want); err != nil {
			t.Fatal(err)
		}
		for _, res := range []ResolutionVal{Res0_25C, Res0_125C, Res0_0625C} {
			if got := th.Celsius(res); got != want {
				t.Fatalf("%s: Celsius()=%g expected %g", res, got, want)
			}
		}
		m, err := th.MilliCelsius(Res0_25C)
		if err != nil {
			t.Fatal(err)
		}
		if m != int32(q)*250 {
			t.Fatalf("MilliCelsius()=%d expected %d", m, q*250)
		}
		if err := th.SetMilliCelsius(m); err != nil {
			t.Fatal(err)
		}
		if got := th.Celsius(Res0_25C); got != want {
			t.Fatalf("SetMilliCelsius(%d): Celsius()=%g expected %g", m, got, want)
		}
	}
}
