// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adv7511 drives the Analog Devices ADV7511 HDMI transmitter when it
// is fed by a 12 bit DDR YCbCr 4:4:4 parallel bus.
//
// The package covers the boot-time register sequence (Configure), the color
// space converter (LoadCSC), the per-VIC timing generator settings
// (ApplyTiming) and a Supervisor that polls the chip forever: it drives a
// status LED from the PLL lock bit, services the HPD and monitor sense
// interrupts and reprograms the timing generator when the source changes
// video format.
//
// The interrupt line must never cause a bus transaction by itself. Connect it
// to EncoderState.Interrupt, either from an interrupt handler or with
// WatchInterrupt, and let the Supervisor service it.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/user-guides/ADV7511_Programming_Guide.pdf
package adv7511
