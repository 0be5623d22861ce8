// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/mcp9808"
	"github.com/GermanBionicSystems/mcp9808/mcp9808reg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	sensor, err := mcp9808.NewI2C(bus, mcp9808.DefaultAddress, nil)
	if err != nil {
		log.Fatal(err)
	}
	env := physic.Env{}
	if err := sensor.Sense(&env); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Temperature: %s\n", env.Temperature)
}

func ExampleDev_SetAlertLimits() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	// A2 tied high.
	sensor, err := mcp9808.NewI2C(bus, mcp9808.SlaveAddress{A2: true}, &mcp9808.Opts{Resolution: mcp9808.Resolution(mcp9808reg.Res0_25C)})
	if err != nil {
		log.Fatal(err)
	}
	err = sensor.SetAlertLimits(
		physic.ZeroCelsius+18*physic.Celsius,
		physic.ZeroCelsius+26*physic.Celsius,
		physic.ZeroCelsius+40*physic.Celsius)
	if err != nil {
		log.Fatal(err)
	}

	// Drive the Alert pin active high whenever a limit is crossed.
	c, err := sensor.ReadConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	c.SetAlertPolarity(mcp9808reg.AlertActiveHigh)
	c.SetAlertControl(mcp9808reg.AlertEnabled)
	c.SetHysteresis(mcp9808reg.Hysteresis1_5C)
	if err := sensor.WriteConfiguration(&c); err != nil {
		log.Fatal(err)
	}

	a, err := sensor.ReadAmbient()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f°C below=%t above=%t critical=%t\n",
		a.Celsius(mcp9808reg.Res0_25C), a.BelowLower(), a.AboveUpper(), a.AboveCritical())
}
