/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks generated token documents: record shape, color
// literals, alias syntax, aliases that point at no defined token, and
// circular aliases.
package validator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/figtokens/resolver"
	"bennypowers.dev/figtokens/token"
)

// ValidationError represents a problem in a token document.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// colorGroup is the wrapper key whose literal values must be colors.
const colorGroup = "color"

// reference is an alias found in a document.
type reference struct {
	filePath string
	path     string
	target   []string
}

// Checker validates documents and collects their token paths so aliases
// can be checked across documents.
type Checker struct {
	defined map[string]bool
	refs    []reference
	tokens  int
}

// NewChecker creates an empty checker.
func NewChecker() *Checker {
	return &Checker{defined: make(map[string]bool)}
}

// Tokens returns the number of token records seen so far.
func (c *Checker) Tokens() int {
	return c.tokens
}

// ValidateDocument checks a single document in isolation.
func ValidateDocument(content []byte) []ValidationError {
	return NewChecker().Add("", content)
}

// Add validates a document's records and remembers its tokens and aliases.
// Documents may be in style-dictionary ("value") or DTCG ("$value") form.
// Flat documents, whose values are not records, are reported as malformed.
func (c *Checker) Add(filePath string, content []byte) []ValidationError {
	var data map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(content), &data); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	return c.walk(data, filePath, nil)
}

func (c *Checker) walk(data map[string]any, filePath string, path []string) []ValidationError {
	var errors []ValidationError

	for _, key := range sortedKeys(data) {
		currentPath := append(path[:len(path):len(path)], key)
		pathStr := strings.Join(currentPath, ".")

		group, ok := data[key].(map[string]any)
		if !ok {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       pathStr,
				Message:    "expected a token record or group",
				Suggestion: "wrap the value as {\"value\": ...}",
			})
			continue
		}

		value, isRecord := recordValue(group)
		if !isRecord {
			errors = append(errors, c.walk(group, filePath, currentPath)...)
			continue
		}

		c.tokens++
		c.defined[pathStr] = true
		errors = append(errors, c.checkValue(value, filePath, currentPath)...)
		errors = append(errors, checkNote(group, filePath, pathStr)...)
	}

	return errors
}

func recordValue(group map[string]any) (any, bool) {
	if v, ok := group["value"]; ok {
		return v, true
	}
	v, ok := group["$value"]
	return v, ok
}

func (c *Checker) checkValue(value any, filePath string, path []string) []ValidationError {
	pathStr := strings.Join(path, ".")
	fail := func(message, suggestion string) []ValidationError {
		return []ValidationError{{FilePath: filePath, Path: pathStr, Message: message, Suggestion: suggestion}}
	}

	switch v := value.(type) {
	case float64:
		return nil

	case string:
		if token.IsAlias(v) {
			target, ok := token.ParseAlias(v)
			if !ok {
				return fail(fmt.Sprintf("malformed alias %q", v), "use {group.path.value}")
			}
			c.refs = append(c.refs, reference{filePath: filePath, path: pathStr, target: target})
			return nil
		}
		if strings.ContainsAny(v, "{}") {
			return fail(fmt.Sprintf("value %q contains a partial alias", v), "aliases must be the whole value")
		}
		if path[0] == colorGroup {
			if _, err := csscolorparser.Parse(v); err != nil {
				return fail(fmt.Sprintf("invalid color %q", v), "use a hex color like #0066ff")
			}
		}
		return nil

	default:
		return fail(fmt.Sprintf("value must be a string or number, got %T", value), "")
	}
}

func checkNote(group map[string]any, filePath, pathStr string) []ValidationError {
	attributes, ok := group["attributes"]
	if !ok {
		return nil
	}
	attrs, ok := attributes.(map[string]any)
	if !ok {
		return []ValidationError{{FilePath: filePath, Path: pathStr + ".attributes", Message: "attributes must be an object"}}
	}
	if note, ok := attrs["note"]; ok {
		if _, isString := note.(string); !isString {
			return []ValidationError{{FilePath: filePath, Path: pathStr + ".attributes.note", Message: "note must be a string"}}
		}
	}
	return nil
}

// Dangling reports aliases whose target is not defined in any added document.
// A target also matches a token whose key joins the remaining path segments
// with "-", so {color.blue.500.value} finds color.blue-500.
func (c *Checker) Dangling() []ValidationError {
	var errors []ValidationError
	for _, ref := range c.refs {
		if _, ok := c.resolve(ref.target); ok {
			continue
		}
		errors = append(errors, ValidationError{
			FilePath:   ref.filePath,
			Path:       ref.path,
			Message:    fmt.Sprintf("alias target %s is not defined", strings.Join(ref.target, ".")),
			Suggestion: "check the style description or validate together with the document defining it",
		})
	}
	return errors
}

// resolve returns the defined token path an alias target refers to.
func (c *Checker) resolve(target []string) (string, bool) {
	if exact := strings.Join(target, "."); c.defined[exact] {
		return exact, true
	}
	if len(target) < 2 {
		return "", false
	}
	dashed := target[0] + "." + strings.Join(target[1:], "-")
	return dashed, c.defined[dashed]
}

// Cycles reports a circular alias chain among the added documents, if any.
func (c *Checker) Cycles() []ValidationError {
	graph := resolver.NewDependencyGraph()
	files := make(map[string]string)
	for path := range c.defined {
		graph.AddNode(path)
	}
	for _, ref := range c.refs {
		if target, ok := c.resolve(ref.target); ok {
			graph.AddDependency(ref.path, target)
			files[ref.path] = ref.filePath
		}
	}

	cycle := graph.FindCycle()
	if cycle == nil {
		return nil
	}
	return []ValidationError{{
		FilePath:   files[cycle[0]],
		Path:       cycle[0],
		Message:    "circular alias: " + strings.Join(cycle, " -> "),
		Suggestion: "point one of the style descriptions at a literal color",
	}}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
