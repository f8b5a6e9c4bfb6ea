package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vcbuild/internal/adapters/logger"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on standard error moves to the cause",
			err:          zerr.With(errors.New("exit status 1"), "path", "/src"),
			wantMessages: []string{"exit status 1"},
			wantMetadata: []map[string]any{{"path": "/src"}},
		},
		{
			name:         "joined class is flattened",
			err:          domain.Invalid(zerr.With(domain.ErrUnknownTarget, "target", "gst")),
			wantMessages: []string{"invalid build configuration", "unknown target"},
			wantMetadata: []map[string]any{{}, {"target": "gst"}},
		},
		{
			name: "command error is kept whole",
			err: errors.Join(domain.ErrBuildExecutionFailed, &domain.CommandError{
				Args: []string{"make"}, Dir: "/obj", ExitCode: 2, Stderr: "boom",
			}),
			wantMessages: []string{"build execution failed", "command failed: make (cwd=/obj)\nboom"},
			wantMetadata: []map[string]any{{}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			assert.Len(t, entries, len(tt.wantMessages), "entry count mismatch")
			for i, wantMsg := range tt.wantMessages {
				assert.Equal(t, wantMsg, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}

	assert.Empty(t, logger.CollectErrorEntriesExported(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause line1\ncause line2", Metadata: map[string]any{"exit_code": 2}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2\n      exit_code: 2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
