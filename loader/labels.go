package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLabels parses a path-label file: one "name<TAB>label" pair per line.
// Blank lines and lines starting with '#' are skipped; a later line for the
// same path wins. The result is meant for core.Graph.ApplyLabels.
func ReadLabels(r io.Reader) (map[string]string, error) {
	labels := make(map[string]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, label, ok := strings.Cut(line, "\t")
		name, label = strings.TrimSpace(name), strings.TrimSpace(label)
		if !ok || name == "" || label == "" {
			return nil, fmt.Errorf("ReadLabels: line %d %q: %w", lineNo, line, ErrBadDocument)
		}
		labels[name] = label
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadLabels: %w", err)
	}

	return labels, nil
}

// ReadLabelsFile is ReadLabels on the named file.
func ReadLabelsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadLabelsFile(%s): %w", path, err)
	}
	defer f.Close()

	return ReadLabels(f)
}
