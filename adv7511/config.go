// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"errors"
	"time"
)

// StabilizationDelay is how long the chip needs after power-up before the
// video registers can be programmed.
const StabilizationDelay = 200 * time.Millisecond

// powerUpOps powers the transmitter up and sets the registers the
// programming guide requires to hold fixed values.
var powerUpOps = []regOp{
	{regPower, powerDownBit, 0},
	{regFixed98, 0xFF, 0x03},
	{regFixed9A, 0xE0, 0xE0},
	{regFixed9C, 0xFF, 0x30},
	{regFixed9D, 0x03, 0x01},
	{regFixedA2, 0xFF, 0xA4},
	{regFixedA3, 0xFF, 0xA4},
	{regFixedE0, 0xFF, 0xD0},
	{regFixedF9, 0xFF, 0x00},
	{regInterruptEnable, interruptMask, interruptMask},
}

// inputOps describes the parallel bus as wired on the board: ID 5 (12 bit
// DDR YCbCr 4:4:4), style 1, first half captured on the rising edge, bit
// order reversed, DDR alignment bit clear.
var inputOps = []regOp{
	{regInputFormat, 0x0F, 0x05},
	{regVideoStyle, 0x0C, 0x08},
	{regVideoStyle, ddrEdgeRisingBit, ddrEdgeRisingBit},
	{regBusOrder, 0x40, 0x40},
	{regBusOrder, 0x20, 0x00},
	// Clock delay, 3 is no delay.
	{regSyncMode, 0x80, 0x80},
	{regSyncMode, 0x70, 3 << 4},
	{regClockDelay, 0xE0, 3 << 5},
	// ID 5 carries no sync pulses.
	{regSyncMode, 0x0C, 0x0C},
	{regDEGeneration, 0x01, 0x01},
	// 4:4:4 output.
	{regVideoStyle, 0x80, 0x00},
}

// aviOps sets the AVI infoframe to YCbCr 4:4:4, 4:3 picture, active format
// same as picture.
var aviOps = []regOp{
	{regAVIColor, 0x60, 0x40},
	{regAVIAspect, 0x30, byte(Aspect4x3) << 4},
	{regAVIAspect, 0x0F, 0x08},
}

var outputOps = []regOp{
	// YCbCr output color space.
	{regVideoStyle, 0x01, 0x01},
	// HDMI, not DVI.
	{regHDMIMode, 0x02, 0x02},
	// General control packet.
	{regPacketEnable, 0x80, 0x80},
	// N = 6144 for 48kHz.
	{regAudioN1, 0xFF, 0x00},
	{regAudioN2, 0xFF, 0x18},
	{regAudioN3, 0xFF, 0x00},
	// SPDIF source, then enable it.
	{regAudioSelect, 0x70, 0x10},
	{regAudioMode, 0x80, 0x80},
}

// PowerUp powers the transmitter up, loads the fixed registers and enables
// the HPD and monitor sense interrupts.
//
// The chip drops some of these registers when HPD goes low, so this must be
// called again once a sink is back.
func (d *Dev) PowerUp() error {
	return apply(d.d, powerUpOps...)
}

// Configure brings a freshly reset chip to output HDMI with YCbCr 4:4:4 video
// and SPDIF audio.
//
// Every step is attempted even if an earlier one failed; the returned error
// joins all the failures. HPD is forced high in st since the board pulls the
// line up.
func (d *Dev) Configure(st *EncoderState) error {
	st.HotPlugDetect = true
	errs := []error{
		writeRegister(d.d, regHPDControl, 0xC0),
		d.PowerUp(),
	}
	d.clock.Sleep(StabilizationDelay)
	errs = append(errs,
		apply(d.d, inputOps...),
		d.updateInfoFrame(aviOps...),
		apply(d.d, outputOps...),
	)
	return errors.Join(errs...)
}

// updateInfoFrame writes ops between setting and clearing the infoframe
// update bit, so the chip never sends a half updated frame. The bit is
// cleared even if a write failed.
func (d *Dev) updateInfoFrame(ops ...regOp) error {
	return errors.Join(
		updateBits(d.d, regInfoFrameUpdate, infoFrameUpdateBit, infoFrameUpdateBit),
		apply(d.d, ops...),
		updateBits(d.d, regInfoFrameUpdate, infoFrameUpdateBit, 0),
	)
}
