// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Key prefixes, matched against the trimmed, lower-cased line.
const (
	ExecTimeKey   = "executiontime"
	CollisionsKey = "numberofhandledcollision"
)

var (
	// The first number on a line wins. Anything after it (units,
	// other counters) is ignored.
	decimalRe = regexp.MustCompile(`\d+(?:\.\d*)?|\.\d+`)
	integerRe = regexp.MustCompile(`\d+`)
)

// A MissingFieldError reports a result file that lacks one or both
// metrics.
type MissingFieldError struct {
	File   string
	Fields []string // keys that were never set
}

func (e *MissingFieldError) Pos() string { return e.File }

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.File, strings.Join(e.Fields, ", "))
}

// ParseRecord reads the content of a result file from r and returns
// the metrics it reports. fileName is used in error messages; it is
// purely diagnostic.
//
// Every line is examined. A line whose trimmed content starts with
// ExecTimeKey (ignoring case) sets the execution time from the first
// decimal number on the line; a line starting with CollisionsKey sets
// the collision count from the first integer on the line. Later lines
// override earlier ones. If either metric is never set, ParseRecord
// returns a *MissingFieldError and no Record.
func ParseRecord(r io.Reader, fileName string) (Record, error) {
	var (
		rec                  Record
		haveTime, haveCounts bool
	)
	err := readLines(r, func(line string) {
		line = strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(line, ExecTimeKey):
			m := decimalRe.FindString(line)
			if m == "" {
				return
			}
			v, err := strconv.ParseFloat(m, 64)
			if err != nil {
				return
			}
			rec.ExecTimeMs, haveTime = v, true
		case strings.HasPrefix(line, CollisionsKey):
			m := integerRe.FindString(line)
			if m == "" {
				return
			}
			v, err := strconv.Atoi(m)
			if err != nil {
				// Out of range for int.
				return
			}
			rec.Collisions, haveCounts = v, true
		}
	})
	if err != nil {
		return Record{}, errors.Wrapf(err, "reading %s", fileName)
	}

	var missing []string
	if !haveTime {
		missing = append(missing, ExecTimeKey)
	}
	if !haveCounts {
		missing = append(missing, CollisionsKey)
	}
	if missing != nil {
		return Record{}, &MissingFieldError{File: fileName, Fields: missing}
	}
	return rec, nil
}

// readLines calls fn with each line of r. Lines may be of any length:
// the benchmark ends every file with a single line holding one index
// per input record. Only the first bufio buffer's worth of a longer
// line is passed to fn; both keys and their values fit well inside it.
func readLines(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadSlice('\n')
		fn(string(line))
		for err == bufio.ErrBufferFull {
			_, err = br.ReadSlice('\n')
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
