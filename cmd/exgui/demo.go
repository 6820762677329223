// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"golang.org/x/image/colornames"

	"exgui.org/core/core"
	"exgui.org/core/styles"
	"exgui.org/core/widgets"
)

// demo is the widget tree shown by the command: a form with a name
// field and a button that greets the name typed in it.
type demo struct {
	frame  *widgets.Frame
	title  *widgets.Label
	name   *widgets.TextField
	greet  *widgets.Button
	status *widgets.Label
}

func newDemo(s *core.Surface) *demo {
	d := &demo{}
	w := float32(s.Config.Width)
	d.frame = widgets.NewFrame(s)
	d.frame.SetGeom(10, 10, w-20, 150)
	fs := styles.NewBox()
	fs.Background = styles.ColorOf(colornames.White)
	fs.Hover = styles.Color{}
	d.frame.SetStyle(fs)

	d.title = widgets.NewLabel("Who are you?", d.frame)
	d.title.SetGeom(20, 20, w-40, 24)
	d.title.Style().Size = 18

	d.name = widgets.NewTextField(d.frame)
	d.name.Placeholder = "Name"
	d.name.SetGeom(20, 54, 200, 28)

	d.greet = widgets.NewButton("Greet", d.frame)
	d.greet.SetGeom(230, 54, 80, 28)

	d.status = widgets.NewLabel("", d.frame)
	d.status.SetGeom(20, 96, w-40, 24)

	d.greet.OnClick = func(bt *widgets.Button) {
		if d.name.Text() == "" {
			d.status.Text = "Type a name first."
			return
		}
		d.status.Text = "Hello, " + d.name.Text() + "!"
	}
	d.frame.Name = "form"
	d.title.Name = "title"
	d.name.Name = "name"
	d.greet.Name = "greet"
	d.status.Name = "status"
	return d
}
