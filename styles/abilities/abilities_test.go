// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, "Visible|Active|NotifyChildren|TextInput|Keyboard|Mouse|Children", Default.String())
	assert.True(t, Default.CanNotifyChildren())
	assert.False(t, Leaf.HasFlag(Children))
	assert.False(t, Leaf.CanNotifyChildren())
	assert.True(t, Leaf.IsVisible())
}

func TestCanNotifyChildren(t *testing.T) {
	assert.False(t, New(Children).CanNotifyChildren())
	assert.False(t, New(NotifyChildren).CanNotifyChildren())
	assert.True(t, New(Children, NotifyChildren).CanNotifyChildren())
}

func TestText(t *testing.T) {
	ab := New(Visible, Mouse)
	b, err := ab.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Visible|Mouse", string(b))

	var out Abilities
	require.NoError(t, out.UnmarshalText(b))
	assert.Equal(t, ab, out)
	assert.Error(t, out.UnmarshalText([]byte("Flying")))
	assert.Equal(t, "Mouse means the widget accepts mouse events.", Mouse.Desc())
}
