// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

import (
	"testing"
)

func TestManufacturerID(t *testing.T) {
	for _, test := range []struct {
		data  []byte
		valid bool
	}{
		{[]byte{0x00, 0x54}, true},
		{[]byte{0x00, 0x00}, false},
		{[]byte{0x54, 0x00}, false},
		{[]byte{0x01, 0x54}, false},
	} {
		m := NewManufacturerID()
		if m.IsValidManufacturer() {
			t.Fatal("zeroed register identifies the manufacturer")
		}
		_ = m.Register().Load(test.data)
		if m.IsValidManufacturer() != test.valid {
			t.Errorf("%#x: IsValidManufacturer()=%t", m.ID(), m.IsValidManufacturer())
		}
	}
}

func TestDeviceID(t *testing.T) {
	d := NewDeviceID()
	if d.IsValidDevice() {
		t.Fatal("zeroed register identifies the device")
	}
	_ = d.Register().Load([]byte{0x04, 0x02})
	if !d.IsValidDevice() || d.ID() != DeviceMCP9808 || d.Revision() != 0x02 {
		t.Errorf("ID()=%#x Revision()=%#x", d.ID(), d.Revision())
	}
	// The revision doesn't take part in the identity check.
	_ = d.Register().Load([]byte{0x04, 0xff})
	if !d.IsValidDevice() {
		t.Error("revision 0xff rejected")
	}
	_ = d.Register().Load([]byte{0x05, 0x00})
	if d.IsValidDevice() {
		t.Error("device 0x05 accepted")
	}
}
