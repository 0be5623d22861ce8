// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp9808

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GermanBionicSystems/mcp9808/mcp9808reg"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Opts holds the configuration options for the device.
type Opts struct {
	// Resolution is written to the device by NewI2C. nil leaves the device
	// resolution untouched, which is mcp9808reg.Res0_0625C after power-up.
	Resolution *mcp9808reg.ResolutionVal
	// SkipIdentityCheck disables the manufacturer and device ID check done by
	// NewI2C.
	SkipIdentityCheck bool
}

// DefaultOpts holds the default configuration options for the device: the
// identity is checked and the resolution is left as is.
var DefaultOpts = Opts{}

// Resolution returns a pointer to v, for use in Opts.
func Resolution(v mcp9808reg.ResolutionVal) *mcp9808reg.ResolutionVal {
	return &v
}

// Dev is a handle to an MCP9808 temperature sensor.
type Dev struct {
	d        *i2c.Dev
	mu       sync.Mutex
	shutdown chan struct{}
	debug    DebugF
}

// NewI2C returns an object that communicates over I²C to an MCP9808 sensor.
// Unless disabled in opts, the device identity is checked before the
// resolution, if any, is written. The Opts can be nil.
func NewI2C(b i2c.Bus, addr SlaveAddress, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Resolution != nil {
		if _, err := mcp9808reg.ParseResolution(byte(*opts.Resolution)); err != nil {
			return nil, fmt.Errorf("mcp9808: %w", err)
		}
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr.Addr()}, debug: noDebug}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !opts.SkipIdentityCheck {
		if err := d.checkIdentity(); err != nil {
			return nil, err
		}
	}
	if opts.Resolution != nil {
		if err := d.writeResolution(*opts.Resolution); err != nil {
			return nil, fmt.Errorf("mcp9808: %w", err)
		}
	}
	return d, nil
}

func noDebug(string, ...interface{}) {}

// EnableDebug traces every register transfer with f. Pass nil to disable.
func (d *Dev) EnableDebug(f DebugF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noDebug
	}
	d.debug = f
}

// read and write expect d.mu to be held.

func (d *Dev) read(v mcp9808reg.Readable) error {
	if err := mcp9808reg.Read(d.d, v); err != nil {
		d.debug("mcp9808: read %s failed: %v", v.Register().Pointer(), err)
		return err
	}
	d.debug("mcp9808: read %s", v.Register())
	return nil
}

func (d *Dev) write(v mcp9808reg.Writable) error {
	if err := mcp9808reg.Write(d.d, v); err != nil {
		d.debug("mcp9808: write %s failed: %v", v.Register().Pointer(), err)
		return err
	}
	d.debug("mcp9808: write %s", v.Register())
	return nil
}

func (d *Dev) checkIdentity() error {
	m := mcp9808reg.NewManufacturerID()
	if err := d.read(&m); err != nil {
		return fmt.Errorf("mcp9808: %w", err)
	}
	id := mcp9808reg.NewDeviceID()
	if err := d.read(&id); err != nil {
		return fmt.Errorf("mcp9808: %w", err)
	}
	if !m.IsValidManufacturer() || !id.IsValidDevice() {
		return &IdentityError{Manufacturer: m.ID(), Device: id.ID()}
	}
	return nil
}

// ReadConfiguration returns the CONFIG register.
func (d *Dev) ReadConfiguration() (mcp9808reg.Configuration, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := mcp9808reg.NewConfiguration()
	err := d.read(&c)
	return c, err
}

// WriteConfiguration writes c to the CONFIG register. Bits protected by a lock
// are ignored by the device.
func (d *Dev) WriteConfiguration(c *mcp9808reg.Configuration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(c)
}

// ReadManufacturerID returns the manufacturer ID register.
func (d *Dev) ReadManufacturerID() (mcp9808reg.ManufacturerID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := mcp9808reg.NewManufacturerID()
	err := d.read(&m)
	return m, err
}

// ReadDeviceID returns the device ID and revision register.
func (d *Dev) ReadDeviceID() (mcp9808reg.DeviceID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := mcp9808reg.NewDeviceID()
	err := d.read(&id)
	return id, err
}

// ReadResolution returns the current conversion resolution.
func (d *Dev) ReadResolution() (mcp9808reg.ResolutionVal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readResolution()
}

func (d *Dev) readResolution() (mcp9808reg.ResolutionVal, error) {
	r := mcp9808reg.NewResolution()
	if err := d.read(&r); err != nil {
		return 0, err
	}
	return r.Resolution()
}

// WriteResolution changes the conversion resolution. The next reading at the
// new resolution is available after v.ConversionTime().
func (d *Dev) WriteResolution(v mcp9808reg.ResolutionVal) error {
	if _, err := mcp9808reg.ParseResolution(byte(v)); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeResolution(v)
}

func (d *Dev) writeResolution(v mcp9808reg.ResolutionVal) error {
	r := mcp9808reg.NewResolution()
	r.SetResolution(v)
	return d.write(&r)
}

// ReadAmbient returns the ambient temperature register, which also holds the
// alert comparator flags.
func (d *Dev) ReadAmbient() (mcp9808reg.Ambient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := mcp9808reg.NewAmbient()
	err := d.read(&a)
	return a, err
}

// ReadUpperAlert returns the T_UPPER register.
func (d *Dev) ReadUpperAlert() (mcp9808reg.Threshold, error) {
	return d.readThreshold(mcp9808reg.NewUpperAlert())
}

// ReadLowerAlert returns the T_LOWER register.
func (d *Dev) ReadLowerAlert() (mcp9808reg.Threshold, error) {
	return d.readThreshold(mcp9808reg.NewLowerAlert())
}

// ReadCriticalAlert returns the T_CRIT register.
func (d *Dev) ReadCriticalAlert() (mcp9808reg.Threshold, error) {
	return d.readThreshold(mcp9808reg.NewCriticalAlert())
}

func (d *Dev) readThreshold(t mcp9808reg.Threshold) (mcp9808reg.Threshold, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.read(&t)
	return t, err
}

// WriteAlert writes one of the T_UPPER, T_LOWER or T_CRIT registers, as
// selected by the constructor that created t.
func (d *Dev) WriteAlert(t *mcp9808reg.Threshold) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(t)
}

// SetAlertLimits programs the three alert limits. Values are truncated to
// 0.25°C steps. It returns ErrLocked without writing anything if the limits
// are protected by a lock bit.
func (d *Dev) SetAlertLimits(lower, upper, critical physic.Temperature) error {
	if lower > upper {
		return fmt.Errorf("mcp9808: lower alert limit %s is above upper limit %s", lower, upper)
	}
	regs := []mcp9808reg.Threshold{
		mcp9808reg.NewLowerAlert(),
		mcp9808reg.NewUpperAlert(),
		mcp9808reg.NewCriticalAlert(),
	}
	for i, t := range []physic.Temperature{lower, upper, critical} {
		if err := regs[i].SetTemperature(t); err != nil {
			return fmt.Errorf("mcp9808: %s: %w", regs[i].Register().Pointer(), err)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	c := mcp9808reg.NewConfiguration()
	if err := d.read(&c); err != nil {
		return err
	}
	if c.Locked() {
		return ErrLocked
	}
	for i := range regs {
		if err := d.write(&regs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops temperature conversions to lower the supply current. The
// registers stay accessible and the ambient register keeps its last value.
func (d *Dev) Shutdown() error {
	return d.setShutdownMode(mcp9808reg.Shutdown)
}

// Wake resumes continuous conversions. The first reading is available after
// the conversion time of the current resolution.
func (d *Dev) Wake() error {
	return d.setShutdownMode(mcp9808reg.Continuous)
}

func (d *Dev) setShutdownMode(m mcp9808reg.ShutdownMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := mcp9808reg.NewConfiguration()
	if err := d.read(&c); err != nil {
		return err
	}
	if c.ShutdownMode() == m {
		return nil
	}
	// The device refuses to enter shutdown while locked; leaving it is allowed.
	if m == mcp9808reg.Shutdown && c.Locked() {
		return ErrLocked
	}
	c.SetShutdownMode(m)
	return d.write(&c)
}

// Sense reads the ambient temperature. Implements physic.SenseEnv.
//
// The resolution register is read on every call so the fraction is decoded
// with the resolution the device is actually using.
func (d *Dev) Sense(env *physic.Env) error {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0
	d.mu.Lock()
	defer d.mu.Unlock()
	res, err := d.readResolution()
	if err != nil {
		return fmt.Errorf("mcp9808: %w", err)
	}
	a := mcp9808reg.NewAmbient()
	if err := d.read(&a); err != nil {
		return fmt.Errorf("mcp9808: %w", err)
	}
	env.Temperature = a.Temperature(res)
	return nil
}

// SenseContinuous reads the ambient temperature every interval and writes it
// to the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
//
// If interval is shorter than the conversion time of the current resolution,
// an error is returned.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("mcp9808: SenseContinuous already running")
	}
	res, err := d.readResolution()
	if err != nil {
		return nil, fmt.Errorf("mcp9808: %w", err)
	}
	if interval < res.ConversionTime() {
		return nil, fmt.Errorf("mcp9808: interval %s is shorter than the %s conversion time at %s", interval, res.ConversionTime(), res)
	}

	d.shutdown = make(chan struct{})
	ch := make(chan physic.Env, 16)
	go func(ch chan<- physic.Env, shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				env := physic.Env{}
				if err := d.Sense(&env); err != nil {
					continue
				}
				select {
				case ch <- env:
				case <-shutdown:
					return
				}
			}
		}
	}(ch, d.shutdown)
	return ch, nil
}

// Halt stops a SenseContinuous operation in progress. The device keeps
// converting; use Shutdown to stop it. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return nil
}

// Precision returns the finest step the device can report, 0.0625°C.
// Implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = mcp9808reg.Res0_0625C.Precision()
	env.Pressure = 0
	env.Humidity = 0
}

func (d *Dev) String() string {
	return fmt.Sprintf("mcp9808: %s", d.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
