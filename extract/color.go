/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/naming"
	"bennypowers.dev/figtokens/token"
	"bennypowers.dev/figtokens/units"
)

func (e *Extractor) primitiveColor(m Match, _ naming.Rule) ([]*token.Token, error) {
	if len(m.Node.Fills) == 0 {
		return nil, malformed(token.ColorPrimitive, m.Node, "no fills")
	}
	hex, ok, err := e.paintHex(token.ColorPrimitive, m.Node, m.Node.Fills[0])
	if err != nil || !ok {
		return nil, err
	}
	return []*token.Token{{Key: m.Parsed.Key(), Value: hex}}, nil
}

func (e *Extractor) semanticColor(m Match, rule naming.Rule) ([]*token.Token, error) {
	key := m.Parsed.Key()

	if alias, ok := e.styles.Resolve(m.Node.Name); ok {
		return []*token.Token{{Key: key, Value: alias}}, nil
	}

	paint, err := semanticPaint(m, rule)
	if err != nil {
		return nil, err
	}
	hex, ok, err := e.paintHex(token.ColorSemantic, m.Node, paint)
	if err != nil || !ok {
		return nil, err
	}
	return []*token.Token{{Key: key, Value: hex}}, nil
}

// semanticPaint picks the paint a semantic color reads: the first stroke for
// border colors, the first child's first fill for text colors, otherwise the
// first fill.
func semanticPaint(m Match, rule naming.Rule) (figma.Paint, error) {
	node := m.Node
	var head string
	if tail := m.Parsed.Tail(rule); len(tail) > 0 {
		head = tail[0]
	}

	switch {
	case strings.HasPrefix(head, "border"):
		if len(node.Strokes) == 0 {
			return figma.Paint{}, malformed(token.ColorSemantic, node, "border color has no strokes")
		}
		return node.Strokes[0], nil

	case strings.HasPrefix(head, "text"):
		child := node.FirstChild()
		if child == nil {
			return figma.Paint{}, malformed(token.ColorSemantic, node, "text color has no child node")
		}
		if len(child.Fills) == 0 {
			return figma.Paint{}, malformed(token.ColorSemantic, node, "text color child %q has no fills", child.Name)
		}
		return child.Fills[0], nil

	default:
		if len(node.Fills) == 0 {
			return figma.Paint{}, malformed(token.ColorSemantic, node, "no fills")
		}
		return node.Fills[0], nil
	}
}

// paintHex encodes a solid paint. Non-solid paints (gradients, images) are
// skipped with a warning and report ok=false.
func (e *Extractor) paintHex(category token.Category, node *figma.Node, paint figma.Paint) (string, bool, error) {
	if paint.Type != figma.PaintSolid {
		logger.Warn("%s: skipping %q: paint type %s is not %s", category, node.Name, paint.Type, figma.PaintSolid)
		return "", false, nil
	}
	if paint.Color == nil {
		return "", false, malformed(category, node, "solid paint has no color")
	}

	c := paint.Color
	r, g, b := c.R*255, c.G*255, c.B*255
	if e.opts.KeepTransparentAlpha && paint.Opacity != nil && *paint.Opacity == 0 {
		return units.ColorToHexAlpha(r, g, b, 0), true, nil
	}
	return units.ColorToHex(r, g, b, paint.Opacity), true, nil
}
