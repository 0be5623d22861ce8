// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp9808 controls a Microchip MCP9808 digital temperature sensor
// over I²C.
//
// Range: -40°C - 125°C
//
// Accuracy: +/- 0.25°C typical, +/- 0.5°C maximum
//
// Resolution: 0.5°C, 0.25°C, 0.125°C or 0.0625°C
//
// Dev exposes one operation per device register, returning the typed views
// defined in package mcp9808reg, and implements physic.SenseEnv for use
// alongside other periph sensors. Every operation performs its own bus
// transactions; nothing read from the device is cached.
//
// A Dev serializes its own bus accesses. Other users of the same physical bus
// must be coordinated by the caller.
//
// A command line tool is available in cmd/mcp9808.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/25095A.pdf
package mcp9808
