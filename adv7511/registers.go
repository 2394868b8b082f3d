// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Main register map addresses.
const (
	regChipRevision    uint8 = 0x00
	regAudioN1         uint8 = 0x01
	regAudioN2         uint8 = 0x02
	regAudioN3         uint8 = 0x03
	regAudioSelect     uint8 = 0x0A
	regAudioMode       uint8 = 0x0B
	regInputFormat     uint8 = 0x15
	regVideoStyle      uint8 = 0x16
	regDEGeneration    uint8 = 0x17
	regCSCBase         uint8 = 0x18
	regHSDelayHigh     uint8 = 0x35
	regVSDelay         uint8 = 0x36
	regWidthHigh       uint8 = 0x37
	regWidthLow        uint8 = 0x38
	regHeightHigh      uint8 = 0x39
	regHeightLow       uint8 = 0x3A
	regSentVIC         uint8 = 0x3D
	regDetectedVIC     uint8 = 0x3E
	regPacketEnable    uint8 = 0x40
	regPower           uint8 = 0x41
	regStatus          uint8 = 0x42
	regBusOrder        uint8 = 0x48
	regInfoFrameUpdate uint8 = 0x4A
	regAVIColor        uint8 = 0x55
	regAVIAspect       uint8 = 0x56
	regInterruptEnable uint8 = 0x94
	regInterrupt       uint8 = 0x96
	regFixed98         uint8 = 0x98
	regFixed9A         uint8 = 0x9A
	regFixed9C         uint8 = 0x9C
	regFixed9D         uint8 = 0x9D
	regPLLStatus       uint8 = 0x9E
	regFixedA2         uint8 = 0xA2
	regFixedA3         uint8 = 0xA3
	regHDMIMode        uint8 = 0xAF
	regClockDelay      uint8 = 0xBA
	regSyncMode        uint8 = 0xD0
	regHPDControl      uint8 = 0xD6
	regVSyncPlacement  uint8 = 0xDC
	regFixedE0         uint8 = 0xE0
	regFixedF9         uint8 = 0xF9
)

// Bits of interest in the registers above.
const (
	powerDownBit       uint8 = 0x40 // regPower
	statusHPDBit       uint8 = 0x40 // regStatus
	statusMonitorBit   uint8 = 0x20 // regStatus
	interruptHPD       uint8 = 0x80 // regInterrupt, regInterruptEnable
	interruptMonitor   uint8 = 0x40 // regInterrupt, regInterruptEnable
	pllLockedBit       uint8 = 0x10 // regPLLStatus
	infoFrameUpdateBit uint8 = 0x40 // regInfoFrameUpdate
	ddrEdgeRisingBit   uint8 = 0x02 // regVideoStyle

	// interruptMask are the interrupt sources the supervisor services.
	interruptMask = interruptHPD | interruptMonitor
)

// BusError is returned when a register transaction fails.
type BusError struct {
	Op  string // "read" or "write"
	Reg uint8
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("adv7511: %s register 0x%02X: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// regOp is a masked register update. A mask of 0xFF is a plain write.
type regOp struct {
	reg   uint8
	mask  uint8
	value uint8
}

func readRegister(d *i2c.Dev, reg uint8) (uint8, error) {
	var rx [1]byte
	if err := d.Tx([]byte{reg}, rx[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return rx[0], nil
}

func writeRegister(d *i2c.Dev, reg, value uint8) error {
	if err := d.Tx([]byte{reg, value}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// updateBits does a read-modify-write of the bits selected by mask.
func updateBits(d *i2c.Dev, reg, mask, value uint8) error {
	if mask == 0xFF {
		return writeRegister(d, reg, value)
	}
	cur, err := readRegister(d, reg)
	if err != nil {
		return err
	}
	return writeRegister(d, reg, (cur&^mask)|(value&mask))
}

// apply runs every op in order. Failures do not stop the sequence; they are
// joined into the returned error.
func apply(d *i2c.Dev, ops ...regOp) error {
	var errs []error
	for _, op := range ops {
		if err := updateBits(d, op.reg, op.mask, op.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
