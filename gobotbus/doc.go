// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gobotbus exposes a gobot sysfs I²C device as a periph i2c.Bus.
//
// It lets periph drivers run on hosts where the I²C bus is already managed
// through gobot.io/x/gobot/sysfs. A combined write then read is issued as two
// separate messages, so it only suits devices that latch the register
// pointer between transactions.
package gobotbus
