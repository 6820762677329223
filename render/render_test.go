// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	rc := &Recorder{}
	assert.Nil(t, rc.Current())
	assert.Nil(t, rc.Last())

	rc.BeginFrame(100, 50, 2)
	rc.Draw("a")
	rc.Draw("b")
	rc.EndFrame()
	assert.Equal(t, []string{"a", "b"}, rc.Last())
	assert.Equal(t, "100x50@2 [a b]", rc.Frames[0].String())
	assert.True(t, rc.Frames[0].Ended)

	rc.Draw("stray")
	assert.Len(t, rc.Frames, 2)
	assert.Equal(t, []string{"stray"}, rc.Last())

	rc.Reset()
	assert.Empty(t, rc.Frames)
}
