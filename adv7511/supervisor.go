// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"context"
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// StatusIndicator is the output reflecting PLL lock: High when locked, Low
// otherwise. Any gpio.PinOut satisfies it.
type StatusIndicator interface {
	Out(l gpio.Level) error
}

// Supervisor owns the runtime loop. It is the only user of the bus once the
// chip is configured.
type Supervisor struct {
	dev   *Dev
	state *EncoderState
	led   StatusIndicator

	// vic is the last detected VIC, or'ed with VICChanged until its timing
	// has been applied.
	vic uint8
	// err collects failures to report on the next Step.
	err error
	// locked is the PLL state last logged.
	locked bool
}

// NewSupervisor returns a Supervisor that applies the default timing on its
// first Step.
func NewSupervisor(dev *Dev, st *EncoderState, led StatusIndicator) *Supervisor {
	return &Supervisor{
		dev:    dev,
		state:  st,
		led:    led,
		vic:    VICChanged | uint8(VICUnavailable),
		locked: true,
	}
}

// Defer queues err to be reported by the next Step.
func (s *Supervisor) Defer(err error) {
	s.err = errors.Join(s.err, err)
}

// Run calls Step until ctx is done. There is no delay between iterations.
func (s *Supervisor) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.Step()
	}
	return ctx.Err()
}

// Step runs one iteration of the loop.
func (s *Supervisor) Step() {
	if s.err != nil {
		s.dev.log.Printf("Encountered error when setting up ADV7511: %v", s.err)
		s.err = nil
	}
	s.pollPLL()
	s.pollVIC()
	if s.state.InterruptPending() {
		s.serviceInterrupt()
	}
	if s.vic&VICChanged != 0 {
		s.vic &= vicMask
		s.reprogram(VIC(s.vic))
	}
}

func (s *Supervisor) pollPLL() {
	locked, err := s.dev.PLLLocked()
	if err != nil {
		s.Defer(err)
		locked = false
	}
	if locked != s.locked {
		s.dev.log.Printf("PLL Lock: %t", locked)
		s.locked = locked
	}
	l := gpio.Low
	if locked {
		l = gpio.High
	}
	if err := s.led.Out(l); err != nil {
		s.Defer(err)
	}
}

func (s *Supervisor) pollVIC() {
	v, err := s.dev.DetectedVIC()
	if err != nil {
		s.Defer(err)
		return
	}
	if uint8(v) != s.vic&vicMask {
		s.dev.log.Printf("VIC Changed! Detected VIC#: 0x%02x (%s)", uint8(v), v)
		s.vic = VICChanged | uint8(v)
	}
}

func (s *Supervisor) serviceInterrupt() {
	d := s.dev
	irq, err := readRegister(d.d, regInterrupt)
	if err != nil {
		s.Defer(err)
	}
	d.log.Printf("Interrupt occurred, interrupt register: 0x%02x", irq)
	if irq&interruptMask != 0 {
		st, err := d.Status()
		if err != nil {
			s.Defer(err)
		} else {
			if irq&interruptHPD != 0 {
				d.log.Print("HPD interrupt")
				s.state.HotPlugDetect = st.HotPlugDetect
			}
			if irq&interruptMonitor != 0 {
				d.log.Print("Monitor Sense interrupt")
				s.state.MonitorSense = st.MonitorSense
			}
		}
	}
	if s.state.HotPlugDetect {
		d.log.Print("HDMI cable detected")
	} else {
		d.log.Print("HDMI cable not detected")
	}
	if s.state.MonitorSense {
		d.log.Print("Monitor is ready")
	} else {
		d.log.Print("Monitor is not ready")
	}
	if s.state.HotPlugDetect && s.state.MonitorSense {
		s.Defer(d.PowerUp())
	}
	s.state.clearInterrupt()
	// The interrupt bits latch; writing them back re-arms the sources.
	s.Defer(updateBits(d.d, regInterrupt, interruptMask, interruptMask))
}

func (s *Supervisor) reprogram(v VIC) {
	d := s.dev
	t, err := d.ApplyTiming(v)
	s.Defer(err)
	if t.VIC != v {
		d.log.Printf("Unknown VIC 0x%02x, set timing for %s", uint8(v), t.VIC)
	} else {
		d.log.Printf("Set timing for %s", t.VIC)
	}
	sent, rep, err := d.SentVIC()
	if err != nil {
		s.Defer(err)
		return
	}
	d.log.Printf("Actual Pixel Repetition: 0x%02x", rep)
	d.log.Printf("Actual VIC Sent: 0x%02x", uint8(sent))
}
