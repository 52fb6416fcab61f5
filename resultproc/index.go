// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"fmt"
	"sort"

	"github.com/hashbench/hashbench/resultfmt"
)

// A Bucket maps values of a Projection's free dimension to the Record
// measured at that value.
type Bucket map[int]resultfmt.Record

// Values returns the free-dimension values present in b in ascending
// order.
func (b Bucket) Values() []int {
	vals := make([]int, 0, len(b))
	for v := range b {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}

// A Group is one Key of an Index and its Bucket.
type Group struct {
	Key    Key
	Bucket Bucket
}

// An Index groups Records by the fixed dimensions of a Projection.
//
// An Index is built once per run by a sequence of Insert calls and
// then read any number of times. It is not safe for concurrent use.
type Index struct {
	// Strict makes Insert reject a second Record for a
	// (Key, free value) pair instead of replacing the first.
	Strict bool

	proj    Projection
	buckets map[Key]Bucket
}

// A DuplicateRecordError is returned by Insert in strict mode when a
// Bucket already holds a Record for the inserted free-dimension value.
type DuplicateRecordError struct {
	Key   Key
	Proj  Projection
	Value int // value of Proj.Free
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("duplicate result for %s, %s=%d", e.Key.Label(e.Proj), e.Proj.Free.Short(), e.Value)
}

// NewIndex returns an empty Index grouping by proj.
func NewIndex(proj Projection) *Index {
	return &Index{proj: proj, buckets: make(map[Key]Bucket)}
}

// Projection returns the Projection x groups by.
func (x *Index) Projection() Projection {
	return x.proj
}

// Insert adds rec, measured at p, to the Bucket for p's Key.
//
// If the Bucket already holds a Record for p's free-dimension value,
// the last write wins: rec replaces it and Insert returns nil. Duplicate
// result files for one parameter point are normal when a sweep is
// rerun. In strict mode, Insert instead leaves the stored Record
// unchanged and returns a *DuplicateRecordError.
func (x *Index) Insert(p resultfmt.Point, rec resultfmt.Record) error {
	key, val := x.proj.Project(p)
	b := x.buckets[key]
	if b == nil {
		b = make(Bucket)
		x.buckets[key] = b
	}
	if _, ok := b[val]; ok && x.Strict {
		return &DuplicateRecordError{Key: key, Proj: x.proj, Value: val}
	}
	b[val] = rec
	return nil
}

// Bucket returns the Bucket for key, or nil if no Record has that Key.
func (x *Index) Bucket(key Key) Bucket {
	return x.buckets[key]
}

// Len returns the number of distinct Keys in x.
func (x *Index) Len() int {
	return len(x.buckets)
}

// Sorted returns every Key of x and its Bucket in ascending Key order,
// so that output derived from an Index is the same on every run.
func (x *Index) Sorted() []Group {
	keys := make([]Key, 0, len(x.buckets))
	for k := range x.buckets {
		keys = append(keys, k)
	}
	SortKeys(keys)
	groups := make([]Group, len(keys))
	for i, k := range keys {
		groups[i] = Group{Key: k, Bucket: x.buckets[k]}
	}
	return groups
}
