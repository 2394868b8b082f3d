// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tinyi2c

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// fakeI2C records transactions the way machine.I2C would see them.
type fakeI2C struct {
	addr uint16
	w    []byte
	r    []byte
}

func (f *fakeI2C) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return f.Tx(uint16(addr), []byte{r}, buf)
}

func (f *fakeI2C) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return f.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.addr = addr
	f.w = append([]byte(nil), w...)
	copy(r, f.r)
	return nil
}

func TestBus_Tx(t *testing.T) {
	f := &fakeI2C{r: []byte{0x14}}
	b := New(f, "I2C0", nil)
	if b.String() != "I2C0" {
		t.Errorf("got %q", b.String())
	}
	r := make([]byte, 1)
	if err := b.Tx(0x39, []byte{0x00}, r); err != nil {
		t.Fatal(err)
	}
	if f.addr != 0x39 || !bytes.Equal(f.w, []byte{0x00}) || r[0] != 0x14 {
		t.Errorf("unexpected transaction addr=0x%02X w=%#v r=%#v", f.addr, f.w, r)
	}
}

func TestBus_SetSpeed(t *testing.T) {
	if err := New(&fakeI2C{}, "I2C0", nil).SetSpeed(100 * physic.KiloHertz); err == nil {
		t.Error("expected error without configure")
	}
	var got physic.Frequency
	b := New(&fakeI2C{}, "I2C0", func(f physic.Frequency) error {
		got = f
		return nil
	})
	if err := b.SetSpeed(0); err == nil {
		t.Error("expected error for 0Hz")
	}
	if err := b.SetSpeed(400 * physic.KiloHertz); err != nil {
		t.Fatal(err)
	}
	if got != 400*physic.KiloHertz {
		t.Errorf("got %s", got)
	}
}
