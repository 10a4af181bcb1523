// Package ioformat implements the file-based external interfaces: reading
// the line-oriented input.txt and writing one TRUE/FALSE line per query to
// output.txt. These files are external collaborators the resolution core
// itself never touches directly; this package is the boundary
// implementation the core is driven through.
package ioformat

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Problem is the parsed contents of an input file: the queries to answer,
// in order, and the knowledge-base sentences to load.
type Problem struct {
	Queries   []string
	Sentences []string
}

// ReadInput parses path according to the fixed line format:
//
//	<N>
//	<query_1>
//	...
//	<query_N>
//	<M>
//	<sentence_1>
//	...
//	<sentence_M>
//
// Whitespace and tabs within any line are stripped before parsing, and
// count lines are validated against the number of lines actually present.
func ReadInput(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, errors.Wrapf(err, "opening input file %q", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strip(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return Problem{}, errors.Wrapf(err, "reading input file %q", path)
	}
	if len(lines) < 1 {
		return Problem{}, errors.Errorf("input file %q is empty", path)
	}

	numQueries, err := strconv.Atoi(lines[0])
	if err != nil {
		return Problem{}, errors.Wrapf(err, "parsing query count from %q", lines[0])
	}
	if numQueries < 0 {
		return Problem{}, errors.Errorf("input file %q declares a negative query count %d", path, numQueries)
	}
	cursor := 1
	if cursor+numQueries > len(lines) {
		return Problem{}, errors.Errorf("input file %q declares %d queries but has only %d remaining lines", path, numQueries, len(lines)-cursor)
	}
	queries := append([]string(nil), lines[cursor:cursor+numQueries]...)
	cursor += numQueries

	if cursor >= len(lines) {
		return Problem{}, errors.Errorf("input file %q is missing the sentence count", path)
	}
	numSentences, err := strconv.Atoi(lines[cursor])
	if err != nil {
		return Problem{}, errors.Wrapf(err, "parsing sentence count from %q", lines[cursor])
	}
	if numSentences < 0 {
		return Problem{}, errors.Errorf("input file %q declares a negative sentence count %d", path, numSentences)
	}
	cursor++
	if cursor+numSentences > len(lines) {
		return Problem{}, errors.Errorf("input file %q declares %d sentences but has only %d remaining lines", path, numSentences, len(lines)-cursor)
	}
	sentences := append([]string(nil), lines[cursor:cursor+numSentences]...)

	return Problem{Queries: queries, Sentences: sentences}, nil
}

// strip removes whitespace and tabs from s.
func strip(s string) string {
	return strings.NewReplacer(" ", "", "\t", "").Replace(s)
}

// Writer appends one TRUE/FALSE line per query to an output file. The file
// is truncated once up front, then written in append mode across queries.
type Writer struct {
	f *os.File
}

// CreateWriter truncates (or creates) path and returns a Writer ready to
// append result lines to it.
func CreateWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %q", path)
	}
	return &Writer{f: f}, nil
}

// WriteResult appends "TRUE\n" or "FALSE\n" depending on entailed.
func (w *Writer) WriteResult(entailed bool) error {
	line := "FALSE\n"
	if entailed {
		line = "TRUE\n"
	}
	if _, err := w.f.WriteString(line); err != nil {
		return errors.Wrap(err, "writing output line")
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}
