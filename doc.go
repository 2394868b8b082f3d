// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hdmibridge is a container for the ADV7511 HDMI bridge supervisor and
// its supporting packages.
//
// See package adv7511 for the driver and cmd/hdmibridge for the host binary.
package hdmibridge
