// Command genumalqura reads the Umm al-Qura month-start table (one MCJDN per
// Hijri month, as published by R. H. van Gent) and generates the Go source
// file holding it as an array literal.
//
// The input may use any separators between the integers. Text after "//" or
// "#" on a line is ignored, so an existing table.go can be fed back in after
// stripping its header.
//
// Usage:
//
//	go run ./cmd/genumalqura -input ummalqura_dat.txt -output internal/umalqura/table.go
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultFirstYear = 1356

	// Lunar months last 29 or 30 days. The published table also carries one
	// 28-day month (1364/08); it is kept as is.
	minMonthLen = 28
	maxMonthLen = 30

	// maxInputSize bounds the input to prevent memory exhaustion.
	maxInputSize = 1 * 1024 * 1024
)

func main() {
	input := flag.String("input", "-", "input file path (- for stdin)")
	output := flag.String("output", "table.go", "output file path")
	firstYear := flag.Int("first-year", defaultFirstYear, "Hijri year of the first tabulated month")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genumalqura: ")

	r, closeInput, err := openInput(*input)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	starts, err := parseInts(r)
	closeInput()
	if err != nil {
		log.Fatalf("failed to parse input: %v", err)
	}

	if err := validate(starts); err != nil {
		log.Fatalf("validation failed: %v", err)
	}

	src, err := generate(*firstYear, starts)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d month starts (%d-%d) to %s",
		len(starts)-1, *firstYear, *firstYear+(len(starts)-1)/12-1, *output)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return io.LimitReader(os.Stdin, maxInputSize), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return io.LimitReader(f, maxInputSize), func() { _ = f.Close() }, nil
}

// parseInts extracts every non-negative integer from r, skipping comments.
func parseInts(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool { return r < '0' || r > '9' })
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// validate checks that starts covers whole years plus a sentinel and that
// every month has a plausible length.
func validate(starts []int) error {
	if len(starts) < 13 {
		return fmt.Errorf("expected at least 13 values, got %d", len(starts))
	}
	if (len(starts)-1)%12 != 0 {
		return fmt.Errorf("expected 12*n+1 values, got %d", len(starts))
	}
	var errs []error
	for i := 1; i < len(starts); i++ {
		n := starts[i] - starts[i-1]
		if n < minMonthLen || n > maxMonthLen {
			errs = append(errs, fmt.Errorf("entry %d: month of %d days (want %d-%d)", i-1, n, minMonthLen, maxMonthLen))
		}
	}
	return errors.Join(errs...)
}

// generate produces a formatted Go source file containing the table.
func generate(firstYear int, starts []int) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by cmd/genumalqura; DO NOT EDIT.\n\n")
	b.WriteString("package umalqura\n\n")
	b.WriteString("// firstYear is the Hijri year whose Muharram is the first tabulated month.\n")
	fmt.Fprintf(&b, "const firstYear = %d\n\n", firstYear)
	b.WriteString("// monthStarts holds the MCJDN on which each tabulated Hijri month begins,\n")
	b.WriteString("// followed by a sentinel marking the day after the last tabulated month.\n")
	b.WriteString("var monthStarts = [...]int{\n")

	months := starts[:len(starts)-1]
	for y := 0; y*12 < len(months); y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\t// %d\n\t", firstYear+y)
		for m, v := range months[y*12 : y*12+12] {
			if m > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d,", v)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n\t// end\n\t%d,\n", starts[len(starts)-1])
	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
