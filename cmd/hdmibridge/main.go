// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// hdmibridge configures an ADV7511 fed by a 12 bit DDR YCbCr source and
// supervises it until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/GermanBionicSystems/hdmibridge/adv7511"
	"github.com/GermanBionicSystems/hdmibridge/consoleled"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	addr := i2c.Addr(adv7511.DefaultAddr)
	flag.Var(&addr, "addr", "ADV7511 main map address")
	hz := physic.Frequency(0)
	flag.Var(&hz, "hz", "I²C bus speed, leave unset to keep the bus default")
	ledName := flag.String("led", "", "status LED pin, the LED is drawn on the console if unset")
	irqName := flag.String("irq", "", "ADV7511 interrupt pin")
	diag := flag.String("diag", "", "file or serial device receiving the diagnostic stream, stdout if unset")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	var w io.Writer = colorable.NewColorableStdout()
	if *diag != "" {
		f, err := os.OpenFile(*diag, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	logger := log.New(w, "", log.Ltime|log.Lmicroseconds)

	bus, err := i2creg.Open(*busName)
	if err != nil {
		return fmt.Errorf("failed to open I²C: %w", err)
	}
	defer bus.Close()
	if hz != 0 {
		if err := bus.SetSpeed(hz); err != nil {
			return err
		}
	}

	var led adv7511.StatusIndicator
	if *ledName != "" {
		p := gpioreg.ByName(*ledName)
		if p == nil {
			return fmt.Errorf("invalid LED pin %q", *ledName)
		}
		led = p
	} else {
		c := consoleled.New(&consoleled.Opts{
			Name: "PLL",
			On:   color.NRGBA{G: 255, A: 255},
			Off:  color.NRGBA{R: 255, A: 255},
		})
		defer c.Halt()
		led = c
	}

	dev, err := adv7511.New(bus, uint16(addr), &adv7511.Opts{Logger: logger})
	if err != nil {
		return err
	}
	defer dev.Halt()

	rev, err := dev.ChipRevision()
	if err != nil {
		return err
	}
	logger.Printf("ADV7511 Chip Revision %d", rev)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := adv7511.NewEncoderState()
	s := adv7511.NewSupervisor(dev, st, led)
	s.Defer(dev.Configure(st))
	s.Defer(dev.LoadCSC(adv7511.IdentityCSC))

	if *irqName != "" {
		p := gpioreg.ByName(*irqName)
		if p == nil {
			return fmt.Errorf("invalid interrupt pin %q", *irqName)
		}
		go func() {
			if err := adv7511.WatchInterrupt(ctx, p, st); err != nil && !errors.Is(err, context.Canceled) {
				logger.Print(err)
			}
		}()
	}

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "hdmibridge: %s.\n", err)
		os.Exit(1)
	}
}
