// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"fmt"
	"os"
	"path/filepath"
)

// A Files reads result files from a result directory.
//
// Files are visited in lexical order of their names. Directory
// entries that are not result files (see IsResultName) are ignored.
// Each result file produces exactly one Entry: a *Result if the file
// was decoded and parsed, or a *FormatError, *MissingFieldError or
// *ReadError describing why it was skipped. Per-file problems never
// stop the scan.
type Files struct {
	// Dir is the result directory to read.
	Dir string

	// Match, if non-nil, selects result files by the Point their
	// name encodes. Files it rejects are passed over without being
	// read and produce no Entry.
	Match func(Point) bool

	// names is the sequence of remaining file names, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	names []string

	entry Entry
	err   error
}

// A SourceUnavailableError reports that the result directory does not
// exist, cannot be listed, or holds no result files.
type SourceUnavailableError struct {
	Dir string
	Err error // underlying error, if any
}

func (e *SourceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no result files in %s", e.Dir)
	}
	return fmt.Sprintf("result directory %s unavailable: %v", e.Dir, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// A ReadError reports a result file that could not be read.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Pos() string   { return e.File }
func (e *ReadError) Error() string { return fmt.Sprintf("%s: %v", e.File, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// init does first-use initialization of f.
func (f *Files) init() {
	f.names = []string{}

	info, err := os.Stat(f.Dir)
	if err != nil {
		f.err = &SourceUnavailableError{Dir: f.Dir, Err: err}
		return
	}
	if !info.IsDir() {
		f.err = &SourceUnavailableError{Dir: f.Dir, Err: fmt.Errorf("not a directory")}
		return
	}
	// os.ReadDir returns entries sorted by file name.
	ents, err := os.ReadDir(f.Dir)
	if err != nil {
		f.err = &SourceUnavailableError{Dir: f.Dir, Err: err}
		return
	}
	for _, ent := range ents {
		if ent.IsDir() || !IsResultName(ent.Name()) {
			continue
		}
		f.names = append(f.names, ent.Name())
	}
	if len(f.names) == 0 {
		f.err = &SourceUnavailableError{Dir: f.Dir}
	}
}

// Scan advances to the next result file and reports whether an Entry
// was produced. The caller should use the Entry method to get it. If
// Scan runs out of files, or if the directory itself is unavailable,
// it returns false; the caller should then use the Err method to check
// for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.names == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}
	for len(f.names) > 0 {
		name := f.names[0]
		f.names = f.names[1:]
		if f.entry = f.read(name); f.entry != nil {
			return true
		}
	}
	f.entry = nil
	return false
}

func (f *Files) read(name string) Entry {
	p, err := ParseName(name)
	if err != nil {
		return err.(*FormatError)
	}
	if f.Match != nil && !f.Match(p) {
		return nil
	}
	file, err := os.Open(filepath.Join(f.Dir, name))
	if err != nil {
		return &ReadError{File: name, Err: err}
	}
	defer file.Close()
	rec, err := ParseRecord(file, name)
	if err != nil {
		if mf, ok := err.(*MissingFieldError); ok {
			return mf
		}
		return &ReadError{File: name, Err: err}
	}
	return &Result{File: name, Point: p, Record: rec}
}

// Entry returns the Entry that was just produced by Scan.
func (f *Files) Entry() Entry {
	return f.entry
}

// Err returns the error that stopped Scan, if any. It is always a
// *SourceUnavailableError. If Scan stopped because every file was
// visited, or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
