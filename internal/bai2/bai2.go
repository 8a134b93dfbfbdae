// Package bai2 reads and writes BAI2 cash management statements: a
// hierarchical fixed-field format of file, group, account and transaction
// records with continuation lines. Parsing folds continuation records,
// decodes typed fields, and reconciles declared counts and control totals;
// writing is the inverse, finalizing totals before emitting.
package bai2

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse reads a statement from r.
func Parse(r io.Reader, opts ParseOptions) (*File, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	return ParseLines(lines, opts)
}

// ParseString parses a statement held in memory.
func ParseString(data string, opts ParseOptions) (*File, error) {
	return Parse(strings.NewReader(data), opts)
}

// ParseLines parses a statement already split into physical lines.
func ParseLines(lines []string, opts ParseOptions) (*File, error) {
	p, err := newParser(lines, opts)
	if err != nil {
		return nil, err
	}
	f, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"groups": len(f.Groups),
		"lines":  len(lines),
	}).Debug("parsed statement")
	return f, nil
}

// Write serializes the file to physical lines, finalizing control totals
// and record counts first. The file is mutated by the finalize pass.
func Write(f *File, opts WriteOptions) []string {
	return newWriter(opts).writeFile(f)
}

// WriteString serializes the file to a single newline joined string.
func WriteString(f *File, opts WriteOptions) string {
	return strings.Join(Write(f, opts), "\n")
}
