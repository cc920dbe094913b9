package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the activity log at path.
// A missing file yields nil, nil so the activity view can render an empty
// state instead of an error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open activity log: %w", err)
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
		return nil, fmt.Errorf("read activity log: %w", err)
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

// known top-level keys of the structured log encoder; everything else is a
// caller-supplied field.
var reservedKeys = map[string]struct{}{
	"ts":     {},
	"level":  {},
	"msg":    {},
	"caller": {},
}

// Format condenses a structured JSON log line into a readable
// "15:04:05 LEVEL message key=value" form. Lines that are not JSON are
// returned unchanged.
func Format(line string) string {
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line
	}

	var b strings.Builder
	if ts, ok := entry["ts"].(float64); ok {
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * float64(time.Second))
		b.WriteString(time.Unix(sec, nsec).Format("15:04:05"))
		b.WriteByte(' ')
	}
	if level, ok := entry["level"].(string); ok {
		b.WriteString(strings.ToUpper(level))
		b.WriteByte(' ')
	}
	if msg, ok := entry["msg"].(string); ok {
		b.WriteString(msg)
	}

	fields := make([]string, 0, len(entry))
	for key, value := range entry {
		if _, reserved := reservedKeys[key]; reserved {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s=%v", key, value))
	}
	sort.Strings(fields)
	for _, field := range fields {
		b.WriteByte(' ')
		b.WriteString(field)
	}
	return b.String()
}

// FormatLines applies Format to each line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Format(line)
	}
	return out
}
