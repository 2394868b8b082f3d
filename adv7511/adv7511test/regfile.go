// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adv7511test implements an in-memory ADV7511 register file to test
// code built on the adv7511 package without hardware.
package adv7511test

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Write is one register write seen by the RegFile.
type Write struct {
	Reg   uint8
	Value uint8
}

// RegFile emulates the ADV7511 main register map on an I²C bus.
//
// A transaction writing one byte and reading one byte is a register read. A
// transaction writing two bytes is a register write. Anything else fails.
type RegFile struct {
	sync.Mutex
	Addr uint16
	// Regs is the register contents.
	Regs [256]uint8
	// Writes logs every register write, in order.
	Writes []Write
	// Reads counts the reads per register.
	Reads [256]int
	// Fail makes any transaction on these registers fail.
	Fail map[uint8]bool
}

// New returns a RegFile answering at addr.
func New(addr uint16) *RegFile {
	return &RegFile{Addr: addr}
}

func (r *RegFile) String() string {
	return "adv7511test"
}

// Tx implements i2c.Bus.
func (r *RegFile) Tx(addr uint16, w, read []byte) error {
	r.Lock()
	defer r.Unlock()
	if addr != r.Addr {
		return conntest.Errorf("adv7511test: no device at 0x%02X", addr)
	}
	switch {
	case len(w) == 1 && len(read) == 1:
		if r.Fail[w[0]] {
			return conntest.Errorf("adv7511test: read 0x%02X failed", w[0])
		}
		read[0] = r.Regs[w[0]]
		r.Reads[w[0]]++
	case len(w) == 2 && len(read) == 0:
		if r.Fail[w[0]] {
			return conntest.Errorf("adv7511test: write 0x%02X failed", w[0])
		}
		r.Regs[w[0]] = w[1]
		r.Writes = append(r.Writes, Write{Reg: w[0], Value: w[1]})
	default:
		return fmt.Errorf("adv7511test: unsupported transaction w=%#v r=%d bytes", w, len(read))
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (r *RegFile) SetSpeed(f physic.Frequency) error {
	return nil
}

// Set sets a register without logging a write, to emulate status bits.
func (r *RegFile) Set(reg, value uint8) {
	r.Lock()
	defer r.Unlock()
	r.Regs[reg] = value
}

// Get returns a register value.
func (r *RegFile) Get(reg uint8) uint8 {
	r.Lock()
	defer r.Unlock()
	return r.Regs[reg]
}

// WritesTo returns the values written to reg, in order.
func (r *RegFile) WritesTo(reg uint8) []uint8 {
	r.Lock()
	defer r.Unlock()
	var out []uint8
	for _, w := range r.Writes {
		if w.Reg == reg {
			out = append(out, w.Value)
		}
	}
	return out
}

// Reset clears the write log and the read counters, keeping the registers.
func (r *RegFile) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Writes = nil
	r.Reads = [256]int{}
}

var _ i2c.Bus = &RegFile{}
