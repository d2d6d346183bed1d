package lockfile

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp says how a line differs between two renderings.
type LineOp int

const (
	LineEqual LineOp = iota
	LineInsert
	LineDelete
)

// Line is one line of a line-level diff, without its newline.
type Line struct {
	Op   LineOp
	Text string
}

// Diff computes a minimal line diff turning before into after.
func Diff(before, after string) []Line {
	dmp := diffmatchpatch.New()
	// No timeout: lockfiles are small and the diff must be minimal.
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []Line
	for _, d := range diffs {
		op := LineEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = LineInsert
		case diffmatchpatch.DiffDelete:
			op = LineDelete
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return out
}

// Changed reports whether a diff contains any insertion or deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != LineEqual {
			return true
		}
	}
	return false
}
