// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: nvim/args.go
// Summary: Positional argument extraction for decoded msgpack tuples.

package nvim

import "fmt"

func errorf(format string, v ...interface{}) error {
	return fmt.Errorf(format, v...)
}

// toInt64 accepts the integer encodings the msgpack layer may hand back.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int:
		return int64(n), true
	case uint:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// args reads positional fields out of one event tuple. The first conversion
// failure sticks in err; callers check it once after reading every field.
type args struct {
	name string
	raw  []interface{}
	err  error
}

func newArgs(name string, raw []interface{}, minLen int) (*args, error) {
	if len(raw) < minLen {
		return nil, errorf("%s wants %d args, got %d", name, minLen, len(raw))
	}
	return &args{name: name, raw: raw}, nil
}

func (a *args) int(i int) int {
	n, ok := toInt64(a.raw[i])
	if !ok && a.err == nil {
		a.err = errorf("%s arg %d is not an integer: %v", a.name, i, a.raw[i])
	}
	return int(n)
}

func (a *args) uint(i int) uint64 {
	n, ok := toInt64(a.raw[i])
	if !ok && a.err == nil {
		a.err = errorf("%s arg %d is not an integer: %v", a.name, i, a.raw[i])
	}
	if n < 0 {
		n = 0
	}
	return uint64(n)
}

func (a *args) array(i int) []interface{} {
	arr, ok := a.raw[i].([]interface{})
	if !ok && a.err == nil {
		a.err = errorf("%s arg %d is not an array: %v", a.name, i, a.raw[i])
	}
	return arr
}
