// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Width int
	Ratio float32
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.toml")
	in := testStruct{Name: "main", Width: 640, Ratio: 2}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Width: 1}, a))
	b2, err := WriteBytes(map[string]any{"Width": 2})
	require.NoError(t, err)
	var partial map[string]any
	require.NoError(t, ReadBytes(&partial, b2))
	require.NoError(t, Save(partial, b))

	var out testStruct
	require.NoError(t, OpenFiles(&out, a, b))
	assert.Equal(t, "a", out.Name)
	assert.Equal(t, 2, out.Width)

	assert.Error(t, OpenFiles(&out, filepath.Join(dir, "missing.toml")))
}
