// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Prefix is the first field of every result file name.
	Prefix = "Results"
	// Ext is the extension of every result file name.
	Ext = ".txt"
	// Sep separates the fields of a result file name.
	Sep = "_"

	// MinFields is the smallest number of Sep-separated fields in a
	// result file name: Prefix, at least one free-text field, and
	// the three parameters.
	MinFields = 5
)

// A FormatError reports a file name that does not encode a Point.
type FormatError struct {
	Name string
	Msg  string
}

func (e *FormatError) Pos() string { return e.Name }

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}

// IsResultName reports whether the base name of path looks like a
// result file, that is, it starts with Prefix and ends with Ext.
// Names that fail this check are not result files at all and are
// ignored by Files without a diagnostic.
func IsResultName(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, Prefix+Sep) && strings.HasSuffix(name, Ext)
}

// ParseName decodes the Point encoded in the base name of path.
//
// The last three Sep-separated fields are the data size, thread count
// and table size, in that order. Any fields between Prefix and those
// three are free text and are ignored.
func ParseName(path string) (Point, error) {
	name := filepath.Base(path)
	if !IsResultName(name) {
		return Point{}, &FormatError{name, fmt.Sprintf("want %s%s...%s", Prefix, Sep, Ext)}
	}
	fields := strings.Split(strings.TrimSuffix(name, Ext), Sep)
	if len(fields) < MinFields {
		return Point{}, &FormatError{name, fmt.Sprintf("have %d fields, want at least %d", len(fields), MinFields)}
	}

	tail := fields[len(fields)-3:]
	var vals [3]int
	for i, f := range tail {
		v, err := parseCount(f)
		if err != nil {
			return Point{}, &FormatError{name, fmt.Sprintf("%s field %q is not a non-negative integer", paramNames[i], f)}
		}
		vals[i] = v
	}
	return Point{DataSize: vals[0], Threads: vals[1], TableSize: vals[2]}, nil
}

var paramNames = [3]string{"dataSize", "threads", "tableSize"}

// parseCount parses a non-negative decimal integer. Unlike
// strconv.Atoi, it rejects signs.
func parseCount(s string) (int, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// FormatName returns the result file name for p. tag is the free-text
// part of the name; it may itself contain Sep but must not be empty.
// ParseName(FormatName(tag, p)) == p for every p with non-negative
// fields.
func FormatName(tag string, p Point) string {
	return fmt.Sprintf("%s%s%s%s%d%s%d%s%d%s", Prefix, Sep, tag, Sep, p.DataSize, Sep, p.Threads, Sep, p.TableSize, Ext)
}
