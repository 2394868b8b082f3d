// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

const (
	// DefaultAddr is the main register map address with the PD/AD pin low.
	DefaultAddr uint16 = 0x39
	// AltAddr is the main register map address with the PD/AD pin high.
	AltAddr uint16 = 0x3D
)

// Opts holds the configuration options.
type Opts struct {
	// Logger receives the diagnostic stream. Output is discarded if nil.
	Logger *log.Logger
	// Clock is used for the power-up stabilization wait. Defaults to the real
	// clock.
	Clock clockwork.Clock
}

// Status is the sink state reported in register 0x42.
type Status struct {
	HotPlugDetect bool
	MonitorSense  bool
}

// Dev is a handle to an ADV7511.
type Dev struct {
	d     *i2c.Dev
	log   *log.Logger
	clock clockwork.Clock
}

// New returns a handle to an ADV7511 at addr on bus. No register is touched.
func New(bus i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if bus == nil {
		return nil, errors.New("adv7511: nil bus")
	}
	if addr != DefaultAddr && addr != AltAddr {
		return nil, fmt.Errorf("adv7511: address 0x%02X not supported, use 0x%02X or 0x%02X", addr, DefaultAddr, AltAddr)
	}
	if opts == nil {
		opts = &Opts{}
	}
	d := &Dev{
		d:     &i2c.Dev{Bus: bus, Addr: addr},
		log:   opts.Logger,
		clock: opts.Clock,
	}
	if d.log == nil {
		d.log = log.New(io.Discard, "", 0)
	}
	if d.clock == nil {
		d.clock = clockwork.NewRealClock()
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADV7511{%s}", d.d)
}

// ChipRevision returns the silicon revision.
func (d *Dev) ChipRevision() (uint8, error) {
	return readRegister(d.d, regChipRevision)
}

// PLLLocked reports whether the TMDS clock PLL is locked on the input clock.
func (d *Dev) PLLLocked() (bool, error) {
	v, err := readRegister(d.d, regPLLStatus)
	return v&pllLockedBit != 0, err
}

// DetectedVIC returns the video identification code the chip detected from
// the input timing.
func (d *Dev) DetectedVIC() (VIC, error) {
	v, err := readRegister(d.d, regDetectedVIC)
	return VIC(v >> 2), err
}

// SentVIC returns the VIC transmitted in the AVI infoframe and the actual
// pixel repetition.
func (d *Dev) SentVIC() (VIC, uint8, error) {
	v, err := readRegister(d.d, regSentVIC)
	return VIC(v & 0x1F), (v & 0xC0) >> 6, err
}

// Status returns the hot plug detect and monitor sense states.
func (d *Dev) Status() (Status, error) {
	v, err := readRegister(d.d, regStatus)
	return Status{
		HotPlugDetect: v&statusHPDBit != 0,
		MonitorSense:  v&statusMonitorBit != 0,
	}, err
}

// Halt powers the transmitter down. Implements conn.Resource.
func (d *Dev) Halt() error {
	return updateBits(d.d, regPower, powerDownBit, powerDownBit)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
