package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple"),
			wantMessages: []string{"simple"},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root"},
		},
		{
			name:         "joined errors are flattened",
			err:          errors.Join(zerr.New("run failed"), zerr.Wrap(errors.New("bad token"), "minify failed")),
			wantMessages: []string{"run failed", "minify failed", "bad token"},
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := collectErrorEntries(tt.err)

			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			if tt.wantMessages == nil {
				assert.Empty(t, messages)
				return
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("base"), "task", "styles"), "file", "a.scss")

	entries := collectErrorEntries(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"task": "styles", "file": "a.scss"}, entries[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []ErrorEntry{{Message: "single"}},
			want:    "Error: single",
		},
		{
			name:    "causes",
			entries: []ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"task": "styles", "file": "a.scss"},
			}},
			want: "Error: error\n       file: a.scss\n       task: styles",
		},
		{
			name:    "multiline cause",
			entries: []ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorEntries(tt.entries))
		})
	}
}
