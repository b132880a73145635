package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates fields in every input file and report. Fields are never
// quoted: a line is split on every ';' and written back joined by ';'.
const Delimiter = ";"

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// SplitLine splits one line into its fields. A trailing '\r' is dropped.
func SplitLine(line string) []string {
	return strings.Split(strings.TrimSuffix(line, "\r"), Delimiter)
}

// ScanLines calls fn with the 1-based line number and fields of every line of
// r. It stops at the first error returned by fn or by the underlying reader.
func ScanLines(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, SplitLine(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}
	return nil
}

// WriteRecords writes header followed by records, fields joined by ';' and
// every line terminated by '\n'. Field content is written as is.
func WriteRecords(w io.Writer, header []string, records [][]string) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(header, Delimiter) + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if _, err := bw.WriteString(strings.Join(rec, Delimiter) + "\n"); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}
