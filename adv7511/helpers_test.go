// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"bytes"
	"log"
	"testing"

	"github.com/GermanBionicSystems/hdmibridge/adv7511/adv7511test"
	"github.com/jonboulle/clockwork"
)

type testRig struct {
	r     *adv7511test.RegFile
	clock clockwork.FakeClock
	log   bytes.Buffer
	dev   *Dev
}

func newTestRig(t *testing.T) *testRig {
	rig := &testRig{
		r:     adv7511test.New(DefaultAddr),
		clock: clockwork.NewFakeClock(),
	}
	d, err := New(rig.r, DefaultAddr, &Opts{
		Logger: log.New(&rig.log, "", 0),
		Clock:  rig.clock,
	})
	if err != nil {
		t.Fatal(err)
	}
	rig.dev = d
	return rig
}

// configure runs Configure, releasing the stabilization wait.
func (rig *testRig) configure(st *EncoderState) error {
	done := make(chan error)
	go func() {
		done <- rig.dev.Configure(st)
	}()
	rig.clock.BlockUntil(1)
	rig.clock.Advance(StabilizationDelay)
	return <-done
}

// checkInfoFrameBracket verifies that every AVI infoframe write happens while
// the update bit is set and that the bit is cleared at the end.
func checkInfoFrameBracket(t *testing.T, writes []adv7511test.Write) {
	t.Helper()
	open := false
	fields := 0
	for i, w := range writes {
		switch w.Reg {
		case regInfoFrameUpdate:
			open = w.Value&infoFrameUpdateBit != 0
		case regAVIColor, regAVIAspect:
			fields++
			if !open {
				t.Errorf("write #%d to 0x%02X outside of the infoframe update", i, w.Reg)
			}
		}
	}
	if open {
		t.Error("infoframe update left open")
	}
	if fields == 0 {
		t.Error("no infoframe field written")
	}
}
