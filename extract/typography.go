/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/naming"
	"bennypowers.dev/figtokens/token"
	"bennypowers.dev/figtokens/units"
)

// typography emits a size and a line-height token per text scale.
func (e *Extractor) typography(m Match, rule naming.Rule) ([]*token.Token, error) {
	node := m.Node
	if rule.Source == naming.Components {
		// The component wraps a text node carrying its own name.
		node = m.Node.FindChild(figma.TypeText, m.Node.Name)
		if node == nil {
			return nil, nil
		}
	}

	style := node.Style
	if style == nil {
		return nil, malformed(token.TextTypography, m.Node, "missing text style")
	}
	// Figma omits the percent line height of "auto" (100%) styles.
	if style.FontSize == nil || style.LineHeightPercentFontSize == nil {
		logger.Warn("%s: skipping %q: missing font size or line height", token.TextTypography, m.Node.Name)
		return nil, nil
	}

	fontSize := *style.FontSize
	lineHeight := *style.LineHeightPercentFontSize
	key := m.Parsed.Key()

	return []*token.Token{
		{
			Key:   key + "-size",
			Value: units.Rem(units.PxToRem(fontSize, e.opts.RootFontSize)),
			Note:  units.Px(fontSize),
		},
		{
			Key:   key + "-line",
			Value: units.PercentToRatio(lineHeight),
			Note:  units.Percent(lineHeight),
		},
	}, nil
}
