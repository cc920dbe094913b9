package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "hyteserve.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero window",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "last five",
			maxLines: 5,
			expected: all[5:],
		},
		{
			name:     "exactly all",
			maxLines: 10,
			expected: all,
		},
		{
			name:     "more than exists",
			maxLines: 20,
			expected: all,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Errorf("Read() = %v, want nil", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level string
		tail  string
	}{
		{
			name:  "entry with extra fields sorted",
			input: `{"level":"info","ts":1717000000,"msg":"catalog loaded","source":"mods","items":12}`,
			level: "INFO",
			tail:  "catalog loaded items=12 source=mods",
		},
		{
			name:  "error entry",
			input: `{"level":"error","ts":1717000000,"msg":"fetch failed","error":"status 502"}`,
			level: "ERROR",
			tail:  "fetch failed error=status 502",
		},
		{
			name:  "caller is dropped",
			input: `{"level":"warn","ts":1717000000,"msg":"slow refresh","caller":"app/auxrefresh.go:40"}`,
			level: "WARN",
			tail:  "slow refresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.input)
			// The rendered timestamp depends on the local zone, so only the
			// remainder of the line is asserted.
			parts := strings.SplitN(result, " ", 3)
			if len(parts) != 3 {
				t.Fatalf("Format() = %q, want timestamp level message", result)
			}
			if parts[1] != tt.level {
				t.Errorf("Format() level = %q, want %q", parts[1], tt.level)
			}
			if parts[2] != tt.tail {
				t.Errorf("Format() tail = %q, want %q", parts[2], tt.tail)
			}
		})
	}

	if got := Format("not json at all"); got != "not json at all" {
		t.Errorf("Format() = %q, want passthrough", got)
	}
}

func TestFormatLines(t *testing.T) {
	input := []string{
		"plain line",
		`{"level":"info","ts":1717000000,"msg":"started"}`,
	}

	result := FormatLines(input)
	if len(result) != len(input) {
		t.Fatalf("FormatLines() returned %d lines, want %d", len(result), len(input))
	}
	if result[0] != "plain line" {
		t.Errorf("FormatLines()[0] = %q, want %q", result[0], "plain line")
	}
	if !strings.HasSuffix(result[1], "INFO started") {
		t.Errorf("FormatLines()[1] = %q, want suffix %q", result[1], "INFO started")
	}
}
