/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/figtokens/validator"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read testdata/%s: %v", name, err)
	}
	return data
}

func TestValidateDocument_Valid(t *testing.T) {
	for _, name := range []string{"primitive.json", "semantics.json", "spacing-dtcg.json"} {
		t.Run(name, func(t *testing.T) {
			errors := validator.ValidateDocument(readTestdata(t, name))
			if len(errors) != 0 {
				t.Errorf("expected no errors, got %d: %v", len(errors), errors)
			}
		})
	}
}

func TestValidateDocument_Invalid(t *testing.T) {
	errors := validator.ValidateDocument(readTestdata(t, "invalid.json"))

	want := map[string]string{
		"color.bad-color":             "invalid color",
		"color.partial":               "partial alias",
		"color.empty-segment":         "malformed alias",
		"color.bool":                  "string or number",
		"color.bare":                  "token record or group",
		"color.noted.attributes.note": "note must be a string",
	}

	if len(errors) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errors), errors)
	}
	for _, err := range errors {
		fragment, ok := want[err.Path]
		if !ok {
			t.Errorf("unexpected error at %s: %s", err.Path, err.Message)
			continue
		}
		if !strings.Contains(err.Message, fragment) {
			t.Errorf("error at %s = %q, want it to mention %q", err.Path, err.Message, fragment)
		}
	}
}

func TestValidateDocument_Flat(t *testing.T) {
	errors := validator.ValidateDocument(readTestdata(t, "flat.json"))
	if len(errors) != 1 || errors[0].Path != "spacing-md" {
		t.Errorf("expected one error at spacing-md, got %v", errors)
	}
}

func TestValidateDocument_ParseError(t *testing.T) {
	errors := validator.ValidateDocument([]byte(`{"color":`))
	if len(errors) != 1 || !strings.Contains(errors[0].Message, "failed to parse") {
		t.Errorf("expected a parse error, got %v", errors)
	}
}

func TestChecker_Dangling(t *testing.T) {
	checker := validator.NewChecker()
	for _, name := range []string{"primitive.json", "semantics.json"} {
		if errors := checker.Add(name, readTestdata(t, name)); len(errors) != 0 {
			t.Fatalf("unexpected errors in %s: %v", name, errors)
		}
	}

	if checker.Tokens() != 6 {
		t.Errorf("Tokens() = %d, want 6", checker.Tokens())
	}

	dangling := checker.Dangling()
	if len(dangling) != 1 {
		t.Fatalf("expected 1 dangling alias, got %d: %v", len(dangling), dangling)
	}
	err := dangling[0]
	if err.FilePath != "semantics.json" || err.Path != "color.link" {
		t.Errorf("dangling alias at %s %s, want semantics.json color.link", err.FilePath, err.Path)
	}
	if !strings.Contains(err.Error(), "color.purple.300") {
		t.Errorf("Error() = %q, want it to name the target", err.Error())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &validator.ValidationError{
		FilePath:   "a.json",
		Path:       "color.x",
		Message:    "invalid color",
		Suggestion: "use hex",
	}
	want := "a.json: color.x: invalid color (use hex)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestChecker_Cycles(t *testing.T) {
	checker := validator.NewChecker()
	checker.Add("a.json", []byte(`{"color":{
		"a":{"value":"{color.b.value}"},
		"b":{"value":"{color.a.value}"},
		"c":{"value":"{color.a.value}"}}}`))

	cycles := checker.Cycles()
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d: %v", len(cycles), cycles)
	}
	want := "circular alias: color.a -> color.b -> color.a"
	if cycles[0].Message != want {
		t.Errorf("Message = %q, want %q", cycles[0].Message, want)
	}
	if cycles[0].FilePath != "a.json" {
		t.Errorf("FilePath = %q, want a.json", cycles[0].FilePath)
	}
}

func TestChecker_NoCycles(t *testing.T) {
	checker := validator.NewChecker()
	checker.Add("primitive.json", readTestdata(t, "primitive.json"))
	checker.Add("semantics.json", readTestdata(t, "semantics.json"))

	if cycles := checker.Cycles(); len(cycles) != 0 {
		t.Errorf("expected no cycles, got %v", cycles)
	}
}
