// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"log/slog"

	"exgui.org/core/base/errors"
	"exgui.org/core/base/iox/yamlx"
)

// Step is one entry of a [Script]. Exactly one of its fields is set.
// A Text step is expanded into one [Text] event per rune.
type Step struct {
	Key   *Key   `yaml:"key,omitempty"`
	Mouse *Mouse `yaml:"mouse,omitempty"`
	Text  string `yaml:"text,omitempty"`
}

// Script is a recorded sequence of input events, typically read
// from a YAML file, that can be replayed into a [Receiver].
type Script struct {
	Steps []Step `yaml:"steps"`
}

// OpenScript reads a script from the given YAML file.
func OpenScript(filename string) (*Script, error) {
	sc := &Script{}
	if err := yamlx.Open(sc, filename); err != nil {
		return nil, err
	}
	if _, err := sc.Events(); err != nil {
		return nil, fmt.Errorf("events.OpenScript: %s: %w", filename, err)
	}
	return sc, nil
}

// Events returns the flat list of events of the script.
func (sc *Script) Events() ([]Event, error) {
	var evs []Event
	var errs []error
	for i, st := range sc.Steps {
		n := 0
		if st.Key != nil {
			evs = append(evs, *st.Key)
			n++
		}
		if st.Mouse != nil {
			evs = append(evs, *st.Mouse)
			n++
		}
		if st.Text != "" {
			for _, r := range st.Text {
				evs = append(evs, Text{Rune: r})
			}
			n++
		}
		if n != 1 {
			errs = append(errs, fmt.Errorf("step %d: must have exactly one of key, mouse or text; has %d", i, n))
		}
	}
	return evs, errors.Join(errs...)
}

// Replay delivers every event of the script to the given receiver,
// in order, and returns the number of events delivered.
func (sc *Script) Replay(r Receiver) (int, error) {
	evs, err := sc.Events()
	if err != nil {
		return 0, err
	}
	for _, ev := range evs {
		slog.Debug("events: replay", "event", ev)
		ev.Deliver(r)
	}
	return len(evs), nil
}
