// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"exgui.org/core/bitflag"
)

// This file contains implementations of enumgen methods.

// comparableEnum is an [Enum] that can be used as a map key.
type comparableEnum interface {
	comparable
	Enum
}

// String returns the string representation of the given
// enum value with the given map.
func String[T comparableEnum](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// Desc returns the description of the given enum value.
func Desc[T comparableEnum](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// BitFlagString returns the string representation of the given bit flag
// value, which is the names of all of the set bit indices among the given
// values, joined by |. It returns "" if none of them are set.
func BitFlagString[T BitFlag](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// HasFlag returns whether the given bit flag word has the
// bit index of the given flag set.
func HasFlag[B bitflag.Bits](bits B, f BitFlag) bool {
	return bitflag.Has(bits, int(f.Int64()))
}

// SetFlag sets the value of the bit indices of the given
// flags in the given bit flag word to the given value.
func SetFlag[B bitflag.Bits](bits *B, on bool, f ...BitFlag) {
	idx := make([]int, len(f))
	for i, fl := range f {
		idx[i] = int(fl.Int64())
	}
	bitflag.SetState(bits, on, idx...)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringLower is like [SetString], but it first looks up the
// lowercase version of the given string.
func SetStringLower[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return SetString(i, s, valueMap, typeName)
}

// SetStringOr sets the given bit flag value from its string representation
// while preserving any bit flags already set. The string may contain several
// flag names separated by | or whitespace.
func SetStringOr[T BitFlag, S BitFlagSetter](i S, s string, valueMap map[string]T, typeName string) error {
	flags := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ' ' })
	for _, flag := range flags {
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
			continue
		}
		return fmt.Errorf("%q is not a valid value for type %s", flag, typeName)
	}
	return nil
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
	}
	return nil
}

// UnmarshalYAML loads the enum from the given YAML node.
func UnmarshalYAML[T EnumSetter](i T, n *yaml.Node, typeName string) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%s.UnmarshalYAML: expected a scalar node, got kind %d", typeName, n.Kind)
	}
	return UnmarshalText(i, []byte(n.Value), typeName)
}

// Scan loads the enum from the given int64 or string value,
// as found in a text-based configuration source.
func Scan[T EnumSetter](i T, value any, typeName string) error {
	switch v := value.(type) {
	case int64:
		i.SetInt64(v)
	case int:
		i.SetInt64(int64(v))
	case string:
		return i.SetString(v)
	case []byte:
		return i.SetString(string(v))
	default:
		return fmt.Errorf("%s.Scan: unsupported value type %T", typeName, value)
	}
	return nil
}
