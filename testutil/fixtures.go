/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for figtokens.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/internal/mapfs"
)

// fixtureRoots are tried in order since go test runs in each package directory.
var fixtureRoots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()

	var fixturePath string
	for _, root := range fixtureRoots {
		candidate := filepath.Join(root, fixtureDir)
		if _, err := os.Stat(candidate); err == nil {
			fixturePath = candidate
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, root := range fixtureRoots {
		content, err := os.ReadFile(filepath.Join(root, fixturePath))
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// LoadSnapshot reads a snapshot fixture such as "fixtures/snapshot/basic/snapshot.jsonc".
func LoadSnapshot(t *testing.T, fixturePath string) *figma.Snapshot {
	t.Helper()

	snap, err := figma.ParseSnapshot(LoadFixtureFile(t, fixturePath))
	if err != nil {
		t.Fatalf("Failed to parse snapshot %s: %v", fixturePath, err)
	}
	return snap
}

// Golden returns a goldie instance reading testdata/golden/<name>.golden
// in the calling package. Run tests with -update to rewrite golden files.
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)
}
