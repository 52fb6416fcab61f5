// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultproc groups and filters benchmark results.
//
// A result is identified by three parameters: data size, thread count
// and table size. A chart compares runs that share two of those
// parameters and differ in the third. A Projection names the two fixed
// dimensions and the free one; an Index groups results by the values of
// the fixed dimensions (a Key) into Buckets keyed by the free
// dimension's value.
//
// The typical steps for processing a result directory are:
//
// 1. Read resultfmt.Results using resultfmt.Files.
//
// 2. Optionally discard Results that do not match a Filter.
//
// 3. Insert each Result into an Index.
//
// 4. Once every Result has been inserted, walk Index.Sorted and present
// each Bucket in ascending Key order.
package resultproc
