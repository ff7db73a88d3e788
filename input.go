package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// readReferences parses a reference list: one decimal virtual address
// per line. Values are masked to 16 bits; blank and malformed lines
// are skipped.
func readReferences(path string) ([]addr16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read reference file: %w", err)
	}
	defer f.Close()

	var seq []addr16
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			slog.Warn("skipping malformed reference", "line", line)
			continue
		}
		seq = append(seq, addr16(v&0xFFFF))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read reference file: %w", err)
	}
	return seq, nil
}
