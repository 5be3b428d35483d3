/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		format  string
		check   func(t *testing.T, out string)
		wantErr bool
	}{
		{format: "text", check: func(t *testing.T, out string) {
			if !strings.HasPrefix(out, "figtokens ") {
				t.Errorf("output = %q, want figtokens prefix", out)
			}
		}},
		{format: "json", check: func(t *testing.T, out string) {
			var info map[string]string
			if err := json.Unmarshal([]byte(out), &info); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if info["version"] == "" {
				t.Error("expected a version field")
			}
		}},
		{format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			Cmd.SetOut(&out)
			if err := Cmd.Flags().Set("format", tt.format); err != nil {
				t.Fatal(err)
			}
			err := run(Cmd, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, out.String())
			}
		})
	}
}
