// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp9808reg models the register file of a Microchip MCP9808
// temperature sensor.
//
// Every register kind shares one storage type, Register, which holds the
// pointer byte and one or two data bytes. The typed views (Configuration,
// DeviceID, ManufacturerID, Resolution, Ambient and Threshold) interpret the
// bits of that storage according to the datasheet. Which views may be written
// back to the device is expressed by the Readable and Writable interfaces:
// only views implementing Writable are accepted by Write.
//
// Bit offsets always use the datasheet numbering, where bit 0 is the least
// significant bit of the last transmitted byte.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/25095A.pdf
package mcp9808reg
