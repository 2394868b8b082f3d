// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestNew(t *testing.T) {
	if _, err := New(nil, DefaultAddr, nil); err == nil {
		t.Error("expected error for nil bus")
	}
	if _, err := New(&i2ctest.Playback{}, 0x20, nil); err == nil {
		t.Error("expected error for bad address")
	}
	d, err := New(&i2ctest.Playback{}, AltAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.log == nil || d.clock == nil {
		t.Error("defaults not set")
	}
	if s := d.String(); s != "ADV7511{playback(61)}" {
		t.Errorf("unexpected String() %q", s)
	}
}

func TestDev_reads(t *testing.T) {
	b := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{0x00}, R: []byte{0x14}},
			{Addr: DefaultAddr, W: []byte{0x9E}, R: []byte{0x30}},
			{Addr: DefaultAddr, W: []byte{0x9E}, R: []byte{0x20}},
			{Addr: DefaultAddr, W: []byte{0x3E}, R: []byte{0x13}},
			{Addr: DefaultAddr, W: []byte{0x3D}, R: []byte{0x45}},
			{Addr: DefaultAddr, W: []byte{0x42}, R: []byte{0x60}},
			{Addr: DefaultAddr, W: []byte{0x42}, R: []byte{0x40}},
		},
	}
	d, err := New(b, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rev, err := d.ChipRevision(); err != nil || rev != 0x14 {
		t.Errorf("ChipRevision() = 0x%02X, %v", rev, err)
	}
	if locked, err := d.PLLLocked(); err != nil || !locked {
		t.Errorf("PLLLocked() = %t, %v", locked, err)
	}
	if locked, err := d.PLLLocked(); err != nil || locked {
		t.Errorf("PLLLocked() = %t, %v", locked, err)
	}
	if v, err := d.DetectedVIC(); err != nil || v != VIC720p60 {
		t.Errorf("DetectedVIC() = %s, %v", v, err)
	}
	if v, rep, err := d.SentVIC(); err != nil || v != VIC1080i60 || rep != 1 {
		t.Errorf("SentVIC() = %s, %d, %v", v, rep, err)
	}
	if s, err := d.Status(); err != nil || !s.HotPlugDetect || !s.MonitorSense {
		t.Errorf("Status() = %+v, %v", s, err)
	}
	if s, err := d.Status(); err != nil || !s.HotPlugDetect || s.MonitorSense {
		t.Errorf("Status() = %+v, %v", s, err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDev_Halt(t *testing.T) {
	b := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{0x41}, R: []byte{0x10}},
			{Addr: DefaultAddr, W: []byte{0x41, 0x50}},
		},
	}
	d, err := New(b, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}
