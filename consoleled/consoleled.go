// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package consoleled emulates a single status LED on the terminal using ANSI
// color codes.
//
// Useful when running the bridge supervisor on a host with no LED wired.
package consoleled

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/gpio"
)

// Opts represents the options available for the LED.
type Opts struct {
	// Name is printed next to the LED.
	Name string
	// On and Off are the colors for gpio.High and gpio.Low.
	On, Off color.NRGBA
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W defaults to the colorable stdout.
	W io.Writer
}

// Dev is a LED drawn on the console.
type Dev struct {
	w       io.Writer
	name    string
	on, off color.NRGBA
	palette ansi256.Palette

	drawn bool
	level gpio.Level
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		name:    opts.Name,
		on:      opts.On,
		off:     opts.Off,
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "ConsoleLED(" + d.name + ")"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Out draws the LED. Nothing is written when the level is unchanged.
func (d *Dev) Out(l gpio.Level) error {
	if d.drawn && l == d.level {
		return nil
	}
	c := d.off
	if l == gpio.High {
		c = d.on
	}
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	_, _ = d.buf.WriteString("\033[0m " + d.name + " " + l.String() + "\033[K")
	if _, err := d.buf.WriteTo(d.w); err != nil {
		return err
	}
	d.drawn = true
	d.level = l
	return nil
}
