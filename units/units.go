/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package units converts raw Figma measurements into token-system values.
package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultRootFontSize is the root font size in pixels that rem values are relative to.
const DefaultRootFontSize = 16

// ColorToHex encodes 0-255 RGB channels as a lowercase hex color.
// The alpha channel (0-1) is appended only when a is non-nil and non-zero,
// so both a missing and a fully transparent alpha produce "#rrggbb".
func ColorToHex(r, g, b float64, a *float64) string {
	hex := rgbHex(r, g, b)
	if a == nil || *a == 0 {
		return hex
	}
	return hex + alphaHex(*a)
}

// ColorToHexAlpha always encodes all four channels as "#rrggbbaa".
func ColorToHexAlpha(r, g, b, a float64) string {
	return rgbHex(r, g, b) + alphaHex(a)
}

func rgbHex(r, g, b float64) string {
	c := colorful.Color{
		R: channel(r) / 255,
		G: channel(g) / 255,
		B: channel(b) / 255,
	}
	return c.Hex()
}

func alphaHex(a float64) string {
	return fmt.Sprintf("%02x", int(channel(a*255)))
}

// channel rounds half away from zero and clamps to 0-255.
func channel(v float64) float64 {
	return math.Min(math.Max(math.Round(v), 0), 255)
}

// PxToRem converts a pixel length to rem against the given root font size.
// A non-positive root falls back to DefaultRootFontSize.
func PxToRem(px, root float64) float64 {
	if root <= 0 {
		root = DefaultRootFontSize
	}
	return px / root
}

// PercentToRatio converts a percentage (150) to a ratio (1.5).
func PercentToRatio(percent float64) float64 {
	return percent / 100
}

// FormatNumber renders v in its shortest decimal form: 2, 0.875, 12.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px renders a pixel measurement note, e.g. "24px".
func Px(v float64) string {
	return FormatNumber(v) + "px"
}

// Rem renders a rem length, e.g. "2rem".
func Rem(v float64) string {
	return FormatNumber(v) + "rem"
}

// Percent renders a percentage note, e.g. "150%".
func Percent(v float64) string {
	return FormatNumber(v) + "%"
}
