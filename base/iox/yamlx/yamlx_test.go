// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	in := testStruct{Name: "main", Width: 640}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadEmpty(t *testing.T) {
	out := testStruct{Name: "keep"}
	require.NoError(t, ReadBytes(&out, nil))
	assert.Equal(t, "keep", out.Name)
}
