// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"context"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestNewEncoderState(t *testing.T) {
	st := NewEncoderState()
	if !st.HotPlugDetect || st.MonitorSense || st.InterruptPending() {
		t.Errorf("unexpected boot state %+v", st)
	}
	st.Interrupt()
	st.Interrupt()
	if !st.InterruptPending() {
		t.Error("interrupt not flagged")
	}
	st.clearInterrupt()
	if st.InterruptPending() {
		t.Error("interrupt not cleared")
	}
}

func TestWatchInterrupt(t *testing.T) {
	pin := &gpiotest.Pin{N: "IRQ", EdgesChan: make(chan gpio.Level)}
	st := NewEncoderState()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- WatchInterrupt(ctx, pin, st)
	}()

	// In() flushes pending edges, so keep toggling until one is seen.
	deadline := time.After(5 * time.Second)
	for l := gpio.High; !st.InterruptPending(); l = !l {
		select {
		case pin.EdgesChan <- l:
		case <-time.After(10 * time.Millisecond):
		case <-deadline:
			t.Fatal("edge never flagged")
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func TestWatchInterrupt_noEdges(t *testing.T) {
	pin := &gpiotest.Pin{N: "IRQ"}
	err := WatchInterrupt(context.Background(), pin, NewEncoderState())
	if err == nil {
		t.Fatal("expected error from a pin without edge detection")
	}
}
