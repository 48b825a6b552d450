package deps

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadRequirements returns the requirement specifiers declared in path.
// Blank lines, comments and installer options (lines starting with "-") are
// skipped; trailing " #" comments are stripped.
func ReadRequirements(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var reqs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, " #"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		reqs = append(reqs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return reqs, nil
}
