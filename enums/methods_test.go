// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// it is much easier to test with an independent enum mock
type fruits int32

const (
	apple fruits = iota
	pear
	orange
)

var fruitsValues = []fruits{apple, pear, orange}
var fruitsMap = map[fruits]string{apple: "Apple", pear: "Pear", orange: "Orange"}
var fruitsValueMap = map[string]fruits{"Apple": apple, "Pear": pear, "Orange": orange}
var fruitsDescMap = map[fruits]string{apple: "A red fruit."}

func (f fruits) String() string         { return BitFlagString(f, fruitsValues) }
func (f fruits) BitIndexString() string { return String(f, fruitsMap) }
func (f fruits) Int64() int64           { return int64(f) }
func (f fruits) Desc() string           { return Desc(f, fruitsDescMap) }
func (f fruits) Values() []Enum {
	res := make([]Enum, len(fruitsValues))
	for i, v := range fruitsValues {
		res[i] = v
	}
	return res
}
func (f fruits) HasFlag(flag BitFlag) bool { return HasFlag(int32(f), flag) }
func (f *fruits) SetInt64(i int64)         { *f = fruits(i) }
func (f *fruits) SetFlag(on bool, flags ...BitFlag) {
	SetFlag((*int32)(f), on, flags...)
}
func (f *fruits) SetString(s string) error {
	*f = 0
	return f.SetStringOr(s)
}
func (f *fruits) SetStringOr(s string) error {
	return SetStringOr(f, s, fruitsValueMap, "fruits")
}

func TestString(t *testing.T) {
	assert.Equal(t, "Apple", String(apple, fruitsMap))
	assert.Equal(t, "7", String(fruits(7), fruitsMap))

	var f fruits
	assert.Equal(t, "", f.String())
	f.SetFlag(true, apple, orange)
	assert.Equal(t, "Apple|Orange", f.String())
	assert.True(t, f.HasFlag(orange))
	assert.False(t, f.HasFlag(pear))
	f.SetFlag(false, apple)
	assert.Equal(t, "Orange", f.String())
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "A red fruit.", apple.Desc())
	assert.Equal(t, "Pear", fruits(0b10).Desc())
}

func TestSetString(t *testing.T) {
	var f fruits
	assert.NoError(t, f.SetString("Pear|Apple"))
	assert.True(t, f.HasFlag(pear))
	assert.True(t, f.HasFlag(apple))
	assert.NoError(t, f.SetStringOr("Orange"))
	assert.Equal(t, "Apple|Pear|Orange", f.String())
	assert.Error(t, f.SetString("Banana"))

	var v fruits
	assert.NoError(t, SetString(&v, "Orange", fruitsValueMap, "fruits"))
	assert.Equal(t, orange, v)
	assert.NoError(t, SetStringLower(&v, "Pear", map[string]fruits{"pear": pear}, "fruits"))
	assert.Equal(t, pear, v)
	assert.Error(t, SetString(&v, "Kiwi", fruitsValueMap, "fruits"))
}

func TestUnmarshal(t *testing.T) {
	var f fruits
	assert.NoError(t, UnmarshalText(&f, []byte("Orange"), "fruits"))
	assert.True(t, f.HasFlag(orange))
	assert.Error(t, UnmarshalText(&f, []byte("Kiwi"), "fruits"))

	assert.NoError(t, UnmarshalYAML(&f, &yaml.Node{Kind: yaml.ScalarNode, Value: "Apple|Pear"}, "fruits"))
	assert.Equal(t, "Apple|Pear", f.String())
	assert.Error(t, UnmarshalYAML(&f, &yaml.Node{Kind: yaml.SequenceNode}, "fruits"))
}

func TestScan(t *testing.T) {
	var f fruits
	assert.NoError(t, Scan(&f, int64(0b101), "fruits"))
	assert.Equal(t, "Apple|Orange", f.String())
	assert.NoError(t, Scan(&f, "Pear", "fruits"))
	assert.Equal(t, "Pear", f.String())
	assert.Error(t, Scan(&f, 1.5, "fruits"))
}
