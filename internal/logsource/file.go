package logsource

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// File reads the last Limit lines of a syslog-format file, such as
// /var/log/mail.log on hosts without journald.
type File struct {
	Path  string
	Limit int
}

// Fetch implements Source. A missing file is an error.
func (f *File) Fetch(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	lines, err := readTail(f.Path, limit)
	if err != nil {
		return nil, err
	}
	return FilterFailures(lines)
}

// Describe implements Source.
func (f *File) Describe() string {
	return f.Path
}

// readTail returns at most maxLines from the end of the file at path.
func readTail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
