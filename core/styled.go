// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Styled is embedded in widgets that own a style of type S, such as
// [styles.Box] or [styles.Text]. The style is optional: a widget without
// one draws with the defaults of S.
type Styled[S any] struct {
	style *S
}

// Style returns the style, allocating a zero one if there is none.
func (st *Styled[S]) Style() *S {
	if st.style == nil {
		st.style = new(S)
	}
	return st.style
}

// SetStyle sets the style; nil removes it.
func (st *Styled[S]) SetStyle(s *S) {
	st.style = s
}

// HasStyle returns whether a style has been set or allocated.
func (st *Styled[S]) HasStyle() bool {
	return st.style != nil
}
