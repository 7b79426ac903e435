// Command peakwindow reads a column of numeric samples and prints the
// peaks found by peakwindow.Detect as "index,winsize" pairs, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/peakwindow"
)

func main() {
	var (
		inputPath = flag.String("in", "", "Path to the input file (default: stdin)")
		csv       = flag.Bool("csv", false, "Read one comma-separated row instead of one value per line")
		capFlag   = flag.Int("cap", -1, "Maximum window size; negative means unbounded")
	)
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("Can't open input file: %s", err.Error())
		}
		defer f.Close()
		r = f
	}

	samples, err := readSamples(r, *csv)
	if err != nil {
		log.Fatalf("Can't read samples: %s", err.Error())
	}

	capWinSize := peakwindow.Unbounded
	if *capFlag >= 0 {
		capWinSize = *capFlag
	}

	out, err := peakwindow.Detect(samples, capWinSize)
	if err != nil {
		log.Fatalf("Detect failed: %s", err.Error())
	}

	for i, winsize := range out {
		if winsize > 0 {
			fmt.Printf("%d,%d\n", i, winsize)
		}
	}
}

// readSamples parses one float64 per line, or a single comma-separated
// row when csv is set.
func readSamples(r io.Reader, csv bool) ([]float64, error) {
	if csv {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		return parseFields(strings.Split(strings.TrimSpace(string(data)), ","))
	}

	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields = append(fields, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return parseFields(fields)
}

func parseFields(fields []string) ([]float64, error) {
	samples := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse sample %q: %w", f, err)
		}
		samples = append(samples, v)
	}

	return samples, nil
}
