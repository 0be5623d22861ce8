// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808

import (
	"errors"
	"fmt"
)

// ErrLocked is returned when a change is refused because the window or
// critical lock bit of the configuration register is set. The device would
// silently ignore the write otherwise. Locks are only released by a power
// cycle.
var ErrLocked = errors.New("mcp9808: configuration is locked")

// IdentityError is returned by NewI2C when the device at the address doesn't
// identify itself as an MCP9808.
type IdentityError struct {
	Manufacturer uint16
	Device       byte
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("mcp9808: unexpected device: manufacturer %#04x, device %#02x", e.Manufacturer, e.Device)
}
