/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"slices"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/naming"
	"bennypowers.dev/figtokens/token"
	"bennypowers.dev/figtokens/units"
)

// dimension reads a component's bounding-box width as rem, noting the pixel width.
// Used for spacing and icon sizes.
func (e *Extractor) dimension(m Match, rule naming.Rule) ([]*token.Token, error) {
	node := m.Node
	if node.Type != figma.TypeComponent {
		return nil, nil
	}
	if node.AbsoluteBoundingBox == nil {
		return nil, malformed(rule.Category, node, "no bounding box")
	}

	width := node.AbsoluteBoundingBox.Width
	return []*token.Token{{
		Key:   m.Parsed.Key(),
		Value: units.PxToRem(width, e.opts.RootFontSize),
		Note:  units.Px(width),
	}}, nil
}

func (e *Extractor) radius(m Match, _ naming.Rule) ([]*token.Token, error) {
	node := m.Node
	if node.Type != figma.TypeComponent {
		return nil, nil
	}

	r, err := cornerRadius(node)
	if err != nil {
		return nil, err
	}

	if e.opts.RadiusUnit == RadiusRem {
		return []*token.Token{{
			Key:   m.Parsed.Key(),
			Value: units.PxToRem(r, e.opts.RootFontSize),
			Note:  units.Px(r),
		}}, nil
	}
	return []*token.Token{{Key: m.Parsed.Key(), Value: units.Px(r)}}, nil
}

// cornerRadius returns the uniform corner radius of a node. Figma omits
// cornerRadius for square corners and sends per-corner radii when they differ.
func cornerRadius(node *figma.Node) (float64, error) {
	if node.CornerRadius != nil {
		return *node.CornerRadius, nil
	}
	radii := node.RectangleCornerRadii
	if len(radii) == 0 {
		return 0, nil
	}
	if slices.Min(radii) != slices.Max(radii) {
		return 0, malformed(token.SizeRadius, node, "corners have differing radii %v", radii)
	}
	return radii[0], nil
}
