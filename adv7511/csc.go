// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adv7511

import "errors"

// CSCMatrix holds the color space converter coefficients A1-A4, B1-B4 and
// C1-C4 as written to registers 0x18-0x2F, high byte first.
//
// The top three bits of A1 are the CSC enable bit and the scaling mode.
type CSCMatrix [12]uint16

// IdentityCSC enables the converter with scaling mode 1 and unity gain on the
// diagonal, passing the input through unchanged.
var IdentityCSC = CSCMatrix{
	0xA800, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0800, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0800, 0x0000,
}

// LoadCSC writes m to the color space converter.
func (d *Dev) LoadCSC(m CSCMatrix) error {
	var errs []error
	for i, c := range m {
		reg := regCSCBase + uint8(2*i)
		errs = append(errs,
			writeRegister(d.d, reg, uint8(c>>8)),
			writeRegister(d.d, reg+1, uint8(c)),
		)
	}
	return errors.Join(errs...)
}
