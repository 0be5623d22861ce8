// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808

import (
	"testing"
)

func TestSlaveAddress(t *testing.T) {
	tests := []struct {
		addr SlaveAddress
		want uint16
	}{
		{DefaultAddress, 0b1_1000},
		{SlaveAddress{A0: true}, 0b1_1001},
		{SlaveAddress{A1: true}, 0b1_1010},
		{SlaveAddress{A2: true}, 0b1_1100},
		{SlaveAddress{A2: true, A0: true}, 0b1_1101},
		{SlaveAddress{A2: true, A1: true, A0: true}, 0b1_1111},
	}
	for _, test := range tests {
		if got := test.addr.Addr(); got != test.want {
			t.Errorf("%+v: Addr()=%#x expected %#x", test.addr, got, test.want)
		}
		parsed, err := ParseAddress(test.want)
		if err != nil {
			t.Fatal(err)
		}
		if parsed != test.addr || !parsed.Equal(test.addr) {
			t.Errorf("ParseAddress(%#x)=%+v expected %+v", test.want, parsed, test.addr)
		}
	}
	if DefaultAddress.String() != "0x18" {
		t.Errorf("String()=%q", DefaultAddress.String())
	}
}

func TestSlaveAddressEqual(t *testing.T) {
	if !DefaultAddress.Equal(SlaveAddress{A2: false, A1: false, A0: false}) {
		t.Error("default address differs from all pins low")
	}
	if DefaultAddress.Equal(SlaveAddress{A1: true}) {
		t.Error("different addresses compare equal")
	}
}

func TestParseAddressInvalid(t *testing.T) {
	for _, a := range []uint16{0x00, 0x17, 0x20, 0x48, 0x118} {
		if _, err := ParseAddress(a); err == nil {
			t.Errorf("ParseAddress(%#x) succeeded", a)
		}
	}
}
