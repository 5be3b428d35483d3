/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma models the subset of the Figma REST API document tree
// needed to extract design tokens, and provides a thin client for fetching it.
package figma

// Node types relevant to token extraction.
const (
	TypeRectangle    = "RECTANGLE"
	TypeText         = "TEXT"
	TypeComponent    = "COMPONENT"
	TypeComponentSet = "COMPONENT_SET"
	TypeFrame        = "FRAME"
)

// PaintSolid is the paint type carrying a single color.
const PaintSolid = "SOLID"

// Node is a single element of a Figma document tree.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Fills               []Paint    `json:"fills,omitempty"`
	Strokes             []Paint    `json:"strokes,omitempty"`
	Children            []*Node    `json:"children,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
	CornerRadius        *float64   `json:"cornerRadius,omitempty"`

	// RectangleCornerRadii is set instead of CornerRadius when corners differ.
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`

	Style *TypeStyle `json:"style,omitempty"`
}

// Paint is a fill or stroke.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// Color is an RGBA color with channels in the 0-1 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Rectangle is a node's bounding box in absolute coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TypeStyle holds the text metrics of a TEXT node.
type TypeStyle struct {
	FontFamily                string   `json:"fontFamily,omitempty"`
	FontWeight                float64  `json:"fontWeight,omitempty"`
	FontSize                  *float64 `json:"fontSize,omitempty"`
	LineHeightPx              *float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercentFontSize *float64 `json:"lineHeightPercentFontSize,omitempty"`
}

// Style is published style metadata.
type Style struct {
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Component is published component metadata.
type Component struct {
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	NodeID      string `json:"node_id"`
	Description string `json:"description,omitempty"`
}

// NodeEntry wraps a node as returned by the nodes endpoint.
type NodeEntry struct {
	Document *Node `json:"document"`
}

// FirstChild returns the node's first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// FindChild returns the first descendant (depth-first) with the given
// type and name, or nil.
func (n *Node) FindChild(nodeType, name string) *Node {
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if child.Type == nodeType && child.Name == name {
			return child
		}
		if found := child.FindChild(nodeType, name); found != nil {
			return found
		}
	}
	return nil
}
