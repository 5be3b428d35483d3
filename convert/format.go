/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/figtokens/convert/formatter"
	"bennypowers.dev/figtokens/convert/formatter/dtcg"
	"bennypowers.dev/figtokens/convert/formatter/flatjson"
	"bennypowers.dev/figtokens/convert/formatter/styledictionary"
)

// Format represents an output format for token documents.
type Format string

const (
	// FormatStyleDictionary outputs {"value", "attributes": {"note"}} records (default).
	FormatStyleDictionary Format = "style-dictionary"

	// FormatDTCG outputs {"$value", "$description"} records.
	FormatDTCG Format = "dtcg"

	// FormatFlatJSON outputs flat key-value JSON without wrapper keys.
	FormatFlatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatStyleDictionary),
		string(FormatDTCG),
		string(FormatFlatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "style-dictionary", "sd", "":
		return FormatStyleDictionary, nil
	case "dtcg":
		return FormatDTCG, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// NewFormatter returns the formatter for a format.
func NewFormatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatStyleDictionary, "":
		return styledictionary.New(), nil
	case FormatDTCG:
		return dtcg.New(), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
