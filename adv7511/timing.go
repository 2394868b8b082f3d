// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import (
	"errors"
	"strconv"
)

// VIC is a CEA-861 video identification code as detected by the chip.
type VIC uint8

// Supported formats.
const (
	VICUnavailable VIC = 0
	VICVGA640x480  VIC = 1
	VIC480p4x3     VIC = 2
	VIC480p16x9    VIC = 3
	VIC720p60      VIC = 4
	VIC1080i60     VIC = 5
)

const (
	// VICChanged is set in the tracked VIC value until the new timing has
	// been applied.
	VICChanged uint8 = 0x80
	vicMask    uint8 = 0x7F
)

func (v VIC) String() string {
	switch v {
	case VICUnavailable:
		return "Unavailable"
	case VICVGA640x480:
		return "VGA 640x480 4:3"
	case VIC480p4x3:
		return "480p 4:3"
	case VIC480p16x9:
		return "480p 16:9"
	case VIC720p60:
		return "720p60 16:9"
	case VIC1080i60:
		return "1080i60 16:9"
	}
	return "VIC(" + strconv.Itoa(int(v)) + ")"
}

// AspectRatio is the picture aspect ratio field of the AVI infoframe.
type AspectRatio uint8

// Picture aspect ratios.
const (
	AspectNone AspectRatio = 0
	Aspect4x3  AspectRatio = 1
	Aspect16x9 AspectRatio = 2
)

func (a AspectRatio) String() string {
	switch a {
	case Aspect4x3:
		return "4:3"
	case Aspect16x9:
		return "16:9"
	}
	return "none"
}

// TimingMode holds the timing generator settings for one input format.
//
// The delays are measured from the DE-derived sync on this board's source
// and are not the CEA-861 front porch values.
type TimingMode struct {
	VIC           VIC
	DDREdgeRising bool
	HSyncDelay    uint16
	VSyncDelay    uint16
	ActiveWidth   uint16
	ActiveHeight  uint16
	Aspect        AspectRatio
	Interlaced    bool
}

var timings = map[VIC]TimingMode{
	VICUnavailable: {VIC: VICUnavailable, DDREdgeRising: true, HSyncDelay: 118, VSyncDelay: 36, ActiveWidth: 720, ActiveHeight: 480, Aspect: Aspect4x3},
	// 121 was also seen to work.
	VICVGA640x480: {VIC: VICVGA640x480, DDREdgeRising: true, HSyncDelay: 119, VSyncDelay: 36, ActiveWidth: 720, ActiveHeight: 480, Aspect: Aspect4x3},
	VIC480p4x3:    {VIC: VIC480p4x3, DDREdgeRising: true, HSyncDelay: 118, VSyncDelay: 36, ActiveWidth: 720, ActiveHeight: 480, Aspect: Aspect4x3},
	VIC480p16x9:   {VIC: VIC480p16x9, DDREdgeRising: true, HSyncDelay: 118, VSyncDelay: 36, ActiveWidth: 720, ActiveHeight: 480, Aspect: Aspect16x9},
	// 259 was also tried.
	VIC720p60: {VIC: VIC720p60, DDREdgeRising: true, HSyncDelay: 299, VSyncDelay: 25, ActiveWidth: 1280, ActiveHeight: 720, Aspect: Aspect16x9},
	// 232 was also tried. Active height is per field.
	VIC1080i60: {VIC: VIC1080i60, DDREdgeRising: true, HSyncDelay: 233, VSyncDelay: 22, ActiveWidth: 1920, ActiveHeight: 540, Aspect: Aspect16x9, Interlaced: true},
}

// LookupTiming returns the timing for v. Unknown codes get the VICUnavailable
// entry and false.
func LookupTiming(v VIC) (TimingMode, bool) {
	t, ok := timings[v]
	if !ok {
		return timings[VICUnavailable], false
	}
	return t, true
}

// The timing generator fields straddle register boundaries.

func hsDelayHigh(v uint16) uint8 { return uint8(v >> 2) }
func hsDelayLow(v uint16) uint8  { return uint8(v << 6) }

func activeWidthHigh(v uint16) uint8 { return uint8(v >> 7) }
func activeWidthLow(v uint16) uint8  { return uint8(v << 1) }

func activeHeightHigh(v uint16) uint8 { return uint8(v >> 4) }
func activeHeightLow(v uint16) uint8  { return uint8(v << 4) }

// ApplyTiming programs the timing generator and the AVI aspect ratio for v.
//
// All writes are attempted; the returned error joins the failures. The
// returned TimingMode is the one applied, which is the default entry for an
// unknown v.
func (d *Dev) ApplyTiming(v VIC) (TimingMode, error) {
	t, _ := LookupTiming(v)
	var errs []error
	errs = append(errs, d.updateInfoFrame(regOp{regAVIAspect, 0x30, byte(t.Aspect) << 4}))
	if t.Interlaced {
		errs = append(errs, apply(d.d,
			// Interlace offset.
			regOp{regWidthHigh, 0xE0, 0},
			// Vsync placement adjustment.
			regOp{regVSyncPlacement, 0xE0, 0},
		))
	}
	var ddr uint8
	if t.DDREdgeRising {
		ddr = ddrEdgeRisingBit
	}
	errs = append(errs, apply(d.d,
		regOp{regVideoStyle, ddrEdgeRisingBit, ddr},
		regOp{regVSDelay, 0x3F, uint8(t.VSyncDelay)},
		regOp{regHSDelayHigh, 0xFF, hsDelayHigh(t.HSyncDelay)},
		regOp{regVSDelay, 0xC0, hsDelayLow(t.HSyncDelay)},
		regOp{regWidthHigh, 0x1F, activeWidthHigh(t.ActiveWidth)},
		regOp{regWidthLow, 0xFE, activeWidthLow(t.ActiveWidth)},
		regOp{regHeightHigh, 0xFF, activeHeightHigh(t.ActiveHeight)},
		regOp{regHeightLow, 0xF0, activeHeightLow(t.ActiveHeight)},
	))
	return t, errors.Join(errs...)
}
