// Package corpus generates and loads directories of pre-built timeline
// documents for file-based benchmarking.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoFiles indicates the corpus directory contains no matching files.
var ErrNoFiles = errors.New("timelinebench: corpus contains no .json files")

// Error reports a corpus directory that is missing, unreadable, or empty.
// File-corpus benchmarking is skipped on this error; it never aborts the
// in-memory suite.
type Error struct {
	// Dir is the corpus directory.
	Dir string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("timelinebench: corpus %s: %s: %v", e.Dir, e.Message, e.Cause)
	}
	return fmt.Sprintf("timelinebench: corpus %s: %s", e.Dir, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Corpus is a set of pre-generated documents loaded into memory. Files are
// held in directory-listing order so repeated loads benchmark identically.
type Corpus struct {
	// Names are the base filenames, parallel to Files.
	Names []string

	// Files are the raw document contents.
	Files [][]byte
}

// Len returns the number of loaded files.
func (c *Corpus) Len() int { return len(c.Files) }

// TotalBytes returns the summed size of all loaded files.
func (c *Corpus) TotalBytes() int64 {
	var total int64
	for _, f := range c.Files {
		total += int64(len(f))
	}
	return total
}

// Load reads every .json file in dir into memory. Reads happen once, before
// any timing begins, so file I/O never lands inside a measured interval.
func Load(dir string) (*Corpus, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, &Error{Dir: dir, Message: "bad pattern", Cause: err}
	}
	if len(matches) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, &Error{Dir: dir, Message: "unreadable", Cause: statErr}
		}
		return nil, &Error{Dir: dir, Message: "empty", Cause: ErrNoFiles}
	}

	c := &Corpus{
		Names: make([]string, 0, len(matches)),
		Files: make([][]byte, 0, len(matches)),
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Dir: dir, Message: "read " + filepath.Base(path), Cause: err}
		}
		c.Names = append(c.Names, filepath.Base(path))
		c.Files = append(c.Files, data)
	}
	return c, nil
}
