// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinyi2c exposes a TinyGo I²C bus, such as machine.I2C0, as a
// periph i2c.Bus so periph device drivers run unchanged on a microcontroller.
package tinyi2c

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// Bus wraps a drivers.I2C.
type Bus struct {
	b    drivers.I2C
	name string
	// configure changes the bus frequency, if the bus supports it.
	configure func(f physic.Frequency) error
}

// New returns a Bus named name. configure may be nil if the bus speed is set
// elsewhere.
func New(b drivers.I2C, name string, configure func(f physic.Frequency) error) *Bus {
	return &Bus{b: b, name: name, configure: configure}
}

func (b *Bus) String() string {
	return b.name
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.b.Tx(addr, w, r)
}

// SetSpeed implements i2c.Bus.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	if b.configure == nil {
		return errors.New("tinyi2c: SetSpeed not supported")
	}
	if f <= 0 {
		return errors.New("tinyi2c: invalid frequency " + f.String())
	}
	return b.configure(f)
}

var _ i2c.Bus = &Bus{}
