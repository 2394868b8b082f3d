// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build tinygo && rp2040

// hdmibridge-mcu is the firmware build of the bridge supervisor for an RP2040
// board. Flash with:
//
//	tinygo flash -target=pico ./cmd/hdmibridge-mcu
package main

import (
	"context"
	"log"
	"machine"
	"time"

	"github.com/GermanBionicSystems/hdmibridge/adv7511"
	"github.com/GermanBionicSystems/hdmibridge/tinyi2c"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

const (
	irqPin = machine.GP15
	ledPin = machine.LED
	sdaPin = machine.GP4
	sclPin = machine.GP5
)

// statusLED drives the board LED as a status indicator.
type statusLED machine.Pin

func (p statusLED) Out(l gpio.Level) error {
	machine.Pin(p).Set(bool(l))
	return nil
}

func main() {
	machine.UART0.Configure(machine.UARTConfig{BaudRate: 9600})
	var diag drivers.UART = machine.UART0
	logger := log.New(diag, "", 0)

	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	irqPin.Configure(machine.PinConfig{Mode: machine.PinInput})

	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 100 * machine.KHz,
		SDA:       sdaPin,
		SCL:       sclPin,
	})
	if err != nil {
		panic(err.Error())
	}
	bus := tinyi2c.New(machine.I2C0, "I2C0", func(f physic.Frequency) error {
		return machine.I2C0.SetBaudRate(uint32(f / physic.Hertz))
	})

	time.Sleep(200 * time.Millisecond)

	dev, err := adv7511.New(bus, adv7511.DefaultAddr, &adv7511.Opts{Logger: logger})
	if err != nil {
		panic(err.Error())
	}
	rev, err := dev.ChipRevision()
	if err != nil {
		logger.Print(err)
	}
	logger.Printf("ADV7511 Chip Revision %d", rev)

	st := adv7511.NewEncoderState()
	// The handler runs in interrupt context: flag only, no bus access.
	err = irqPin.SetInterrupt(machine.PinToggle, func(machine.Pin) {
		st.Interrupt()
	})
	if err != nil {
		panic(err.Error())
	}

	s := adv7511.NewSupervisor(dev, st, statusLED(ledPin))
	s.Defer(dev.Configure(st))
	s.Defer(dev.LoadCSC(adv7511.IdentityCSC))
	_ = s.Run(context.Background())
}
