// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a temperature can't be represented by a
	// threshold register, i.e. its magnitude is 256°C or more.
	ErrOutOfRange = errors.New("mcp9808reg: temperature out of range")
	// ErrMilliPrecision is returned when a millidegree conversion is requested
	// at 0.0625°C resolution, which has no exact integer representation.
	ErrMilliPrecision = errors.New("mcp9808reg: 0.0625°C resolution is not representable in m°C")
)

// TransportError wraps the error returned by the bus while transferring a
// register.
type TransportError struct {
	Op      string
	Pointer Pointer
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mcp9808reg: %s %s: %v", e.Op, e.Pointer, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SizeMismatchError reports raw register data whose length doesn't match the
// register width.
type SizeMismatchError struct {
	Pointer Pointer
	Want    int
	Got     int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("mcp9808reg: register %s is %d bytes wide, got %d", e.Pointer, e.Want, e.Got)
}

// InvalidResolutionError is returned when the resolution register holds a
// value that doesn't map to a ResolutionVal.
type InvalidResolutionError struct {
	Code byte
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("mcp9808reg: invalid resolution code %#02x", e.Code)
}
