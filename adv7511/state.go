// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// EncoderState mirrors the sink signals reported by the chip.
//
// HotPlugDetect and MonitorSense are owned by the Supervisor. Interrupt may be
// called from any goroutine or from an interrupt handler.
type EncoderState struct {
	HotPlugDetect bool
	MonitorSense  bool

	pending atomic.Bool
}

// NewEncoderState returns the boot state: HPD is forced high by the board.
func NewEncoderState() *EncoderState {
	return &EncoderState{HotPlugDetect: true}
}

// Interrupt flags that the chip raised its interrupt line. It never touches
// the bus.
func (s *EncoderState) Interrupt() {
	s.pending.Store(true)
}

// InterruptPending reports whether an interrupt is waiting to be serviced.
func (s *EncoderState) InterruptPending() bool {
	return s.pending.Load()
}

func (s *EncoderState) clearInterrupt() {
	s.pending.Store(false)
}

// edgePoll bounds how long WatchInterrupt waits before checking ctx.
const edgePoll = 100 * time.Millisecond

// WatchInterrupt configures pin for edge detection and flags st on every edge
// until ctx is done.
func WatchInterrupt(ctx context.Context, pin gpio.PinIn, st *EncoderState) error {
	if err := pin.In(gpio.Float, gpio.BothEdges); err != nil {
		return fmt.Errorf("adv7511: interrupt pin %s: %w", pin, err)
	}
	for ctx.Err() == nil {
		if pin.WaitForEdge(edgePoll) {
			st.Interrupt()
		}
	}
	return ctx.Err()
}
