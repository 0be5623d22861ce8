// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"periph.io/x/conn/v3"
)

// Readable is implemented by every register view. Read fills the register
// returned by Register.
type Readable interface {
	Register() *Register
}

// Writable is implemented by the register views the host is allowed to
// program: Configuration, Resolution and Threshold. The identification and
// ambient temperature registers are read-only and don't implement it.
type Writable interface {
	Readable
	writable()
}

// Read transfers the register selected by v from the device. It writes the
// pointer byte, then reads Len() bytes in the same transaction, overwriting
// the previous content.
func Read(c conn.Conn, v Readable) error {
	r := v.Register()
	var buf [maxLength]byte
	if err := c.Tx([]byte{byte(r.ptr)}, buf[:r.length]); err != nil {
		return &TransportError{Op: "read", Pointer: r.ptr, Err: err}
	}
	return r.Load(buf[:r.length])
}

// Write transfers v to the device as a single transaction: the pointer byte
// followed by the register bytes, most significant first.
func Write(c conn.Conn, v Writable) error {
	r := v.Register()
	w := make([]byte, 0, 1+maxLength)
	w = append(w, byte(r.ptr))
	w = append(w, r.Bytes()...)
	if err := c.Tx(w, nil); err != nil {
		return &TransportError{Op: "write", Pointer: r.ptr, Err: err}
	}
	return nil
}
