// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808reg

// AlertMode selects how the Alert output behaves. It can't be altered while
// either lock bit is set.
type AlertMode uint8

const (
	// AlertComparator is the power-up default.
	AlertComparator AlertMode = 0
	AlertInterrupt  AlertMode = 1
)

// AlertPolarity selects the active level of the Alert output. It can't be
// altered while either lock bit is set.
type AlertPolarity uint8

const (
	// AlertActiveLow is the power-up default and requires a pull-up resistor.
	AlertActiveLow  AlertPolarity = 0
	AlertActiveHigh AlertPolarity = 1
)

// AlertSelect chooses which limits drive the Alert output. It can't be altered
// while the window lock is set.
type AlertSelect uint8

const (
	// AlertAll asserts for T_UPPER, T_LOWER and T_CRIT (power-up default).
	AlertAll AlertSelect = 0
	// AlertCriticalOnly asserts only when T_A > T_CRIT.
	AlertCriticalOnly AlertSelect = 1
)

// AlertControl enables the Alert output.
type AlertControl uint8

const (
	AlertDisabled AlertControl = 0
	AlertEnabled  AlertControl = 1
)

// AlertStatus reports whether the Alert output is asserted. It can't be
// changed in shutdown mode.
type AlertStatus uint8

const (
	AlertNotAsserted AlertStatus = 0
	AlertAsserted    AlertStatus = 1
)

// InterruptClear clears an interrupt mode alert. The device always reads it
// back as InterruptNoEffect.
type InterruptClear uint8

const (
	InterruptNoEffect    InterruptClear = 0
	InterruptClearOutput InterruptClear = 1
)

// WindowLock locks T_UPPER and T_LOWER until the next power-on reset.
type WindowLock uint8

const (
	WindowUnlocked WindowLock = 0
	WindowLocked   WindowLock = 1
)

// CriticalLock locks T_CRIT until the next internal reset.
type CriticalLock uint8

const (
	CriticalUnlocked CriticalLock = 0
	CriticalLocked   CriticalLock = 1
)

// ShutdownMode selects between continuous conversion and the low-power
// shutdown mode. Shutdown can't be entered while either lock bit is set.
type ShutdownMode uint8

const (
	// Continuous conversion is the power-up default.
	Continuous ShutdownMode = 0
	Shutdown   ShutdownMode = 1
)

// Hysteresis applied to T_UPPER and T_LOWER when the temperature decreases.
type Hysteresis uint8

const (
	Hysteresis0C   Hysteresis = 0b00
	Hysteresis1_5C Hysteresis = 0b01
	Hysteresis3C   Hysteresis = 0b10
	Hysteresis6C   Hysteresis = 0b11
)

// Configuration bit offsets.
const (
	bitAlertMode      = 0
	bitAlertPolarity  = 1
	bitAlertSelect    = 2
	bitAlertControl   = 3
	bitAlertStatus    = 4
	bitInterruptClear = 5
	bitWindowLock     = 6
	bitCriticalLock   = 7
	bitShutdown       = 8
	bitHysteresis     = 9
	widthHysteresis   = 2
)

// Configuration is the 16 bit CONFIG register.
type Configuration struct {
	reg Register
}

// NewConfiguration returns an all zero configuration, which matches the
// power-up defaults.
func NewConfiguration() Configuration {
	return Configuration{reg: NewRegister(PointerConfiguration, 2)}
}

// Register implements Readable.
func (c *Configuration) Register() *Register { return &c.reg }

func (c *Configuration) writable() {}

func (c *Configuration) flag(offset int) uint8 {
	if c.reg.Bit(offset) {
		return 1
	}
	return 0
}

func (c *Configuration) setFlag(offset int, v uint8) {
	c.reg.SetBit(offset, v != 0)
}

// AlertMode returns bit 0, comparator or interrupt output.
func (c *Configuration) AlertMode() AlertMode { return AlertMode(c.flag(bitAlertMode)) }

// SetAlertMode sets bit 0.
func (c *Configuration) SetAlertMode(v AlertMode) { c.setFlag(bitAlertMode, uint8(v)) }

// AlertPolarity returns the active level of the alert pin (bit 1).
func (c *Configuration) AlertPolarity() AlertPolarity {
	return AlertPolarity(c.flag(bitAlertPolarity))
}

// SetAlertPolarity sets bit 1.
func (c *Configuration) SetAlertPolarity(v AlertPolarity) { c.setFlag(bitAlertPolarity, uint8(v)) }

// AlertSelect returns bit 2, all limits or T_CRIT only.
func (c *Configuration) AlertSelect() AlertSelect { return AlertSelect(c.flag(bitAlertSelect)) }

// SetAlertSelect sets bit 2.
func (c *Configuration) SetAlertSelect(v AlertSelect) { c.setFlag(bitAlertSelect, uint8(v)) }

// AlertControl returns whether the alert output is enabled (bit 3).
func (c *Configuration) AlertControl() AlertControl { return AlertControl(c.flag(bitAlertControl)) }

// SetAlertControl sets bit 3.
func (c *Configuration) SetAlertControl(v AlertControl) { c.setFlag(bitAlertControl, uint8(v)) }

// AlertStatus reports whether the alert output is asserted (bit 4).
func (c *Configuration) AlertStatus() AlertStatus { return AlertStatus(c.flag(bitAlertStatus)) }

// SetAlertStatus sets bit 4.
func (c *Configuration) SetAlertStatus(v AlertStatus) { c.setFlag(bitAlertStatus, uint8(v)) }

// InterruptClear returns bit 5. The device always reads it back as 0.
func (c *Configuration) InterruptClear() InterruptClear {
	return InterruptClear(c.flag(bitInterruptClear))
}

// SetInterruptClear sets bit 5. Writing 1 clears an interrupt mode alert.
func (c *Configuration) SetInterruptClear(v InterruptClear) {
	c.setFlag(bitInterruptClear, uint8(v))
}

// WindowLock reports whether T_UPPER and T_LOWER are locked (bit 6).
func (c *Configuration) WindowLock() WindowLock { return WindowLock(c.flag(bitWindowLock)) }

// SetWindowLock sets bit 6. Once set, the device only clears it on a power-on reset.
func (c *Configuration) SetWindowLock(v WindowLock) { c.setFlag(bitWindowLock, uint8(v)) }

// CriticalLock reports whether T_CRIT is locked (bit 7).
func (c *Configuration) CriticalLock() CriticalLock { return CriticalLock(c.flag(bitCriticalLock)) }

// SetCriticalLock sets bit 7. Once set, the device only clears it on reset.
func (c *Configuration) SetCriticalLock(v CriticalLock) { c.setFlag(bitCriticalLock, uint8(v)) }

// ShutdownMode returns bit 8, continuous conversion or shutdown.
func (c *Configuration) ShutdownMode() ShutdownMode { return ShutdownMode(c.flag(bitShutdown)) }

// SetShutdownMode sets bit 8.
func (c *Configuration) SetShutdownMode(v ShutdownMode) { c.setFlag(bitShutdown, uint8(v)) }

// Hysteresis returns the T_UPPER/T_LOWER limit hysteresis (bits 9-10).
func (c *Configuration) Hysteresis() Hysteresis {
	return Hysteresis(c.reg.field(bitHysteresis, widthHysteresis))
}

// SetHysteresis sets bits 9-10. Only the low two bits of v are used.
func (c *Configuration) SetHysteresis(v Hysteresis) {
	c.reg.setField(bitHysteresis, widthHysteresis, uint8(v)&0b11)
}

// Locked reports whether either lock bit is set, in which case the device
// ignores changes to most other bits.
func (c *Configuration) Locked() bool {
	return c.WindowLock() == WindowLocked || c.CriticalLock() == CriticalLocked
}

var _ Writable = &Configuration{}
