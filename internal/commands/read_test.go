package commands

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/testutil"
)

func newTestReadCommand(t *testing.T, content string) *ReadCommand {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/demo.txt", []byte(content), 0o644))
	return NewReadCommand(fs, testutil.Logger())
}

func TestReadCommand_Execute(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		offset   int64
		whence   domain.Whence
		expected string
	}{
		{name: "offset_from_start", count: 3, offset: 2, whence: domain.FromStart, expected: "LLO"},
		{name: "whole_file", count: 5, offset: 0, whence: domain.FromStart, expected: "HELLO"},
		{name: "from_end", count: 2, offset: -2, whence: domain.FromEnd, expected: "LO"},
		{name: "short_read", count: 10, offset: 3, whence: domain.FromStart, expected: "LO"},
		{name: "past_end", count: 3, offset: 10, whence: domain.FromStart, expected: ""},
		{name: "zero_count", count: 0, offset: 0, whence: domain.FromStart, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newTestReadCommand(t, "HELLO")

			result, err := cmd.Execute(context.Background(), ReadRequest{
				Path:   "/demo.txt",
				Count:  tt.count,
				Offset: tt.offset,
				Whence: tt.whence,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result.Data))
		})
	}
}

func TestReadCommand_Execute_OnDisk(t *testing.T) {
	path := testutil.WriteFile(t, "demo.txt", "HELLO")
	cmd := NewReadCommand(afero.NewOsFs(), testutil.Logger())

	result, err := cmd.Execute(context.Background(), ReadRequest{Path: path, Count: 3, Offset: 2})

	require.NoError(t, err)
	assert.Equal(t, "LLO", string(result.Data))
}

func TestReadCommand_Execute_PastEndPrintsNothing(t *testing.T) {
	tests := []struct {
		name string
		fs   func(t *testing.T) (afero.Fs, string)
	}{
		{
			name: "memory",
			fs: func(t *testing.T) (afero.Fs, string) {
				fs := afero.NewMemMapFs()
				require.NoError(t, afero.WriteFile(fs, "/demo.txt", []byte("HELLO"), 0o644))
				return fs, "/demo.txt"
			},
		},
		{
			name: "disk",
			fs: func(t *testing.T) (afero.Fs, string) {
				return afero.NewOsFs(), testutil.WriteFile(t, "demo.txt", "HELLO")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, path := tt.fs(t)
			cmd := NewReadCommand(fs, testutil.Logger())

			result, err := cmd.Execute(context.Background(), ReadRequest{Path: path, Count: 3, Offset: 10})

			require.NoError(t, err)
			assert.Empty(t, result.Data)
		})
	}
}

func TestReadCommand_Execute_MissingFile(t *testing.T) {
	cmd := NewReadCommand(afero.NewMemMapFs(), testutil.Logger())

	_, err := cmd.Execute(context.Background(), ReadRequest{Path: "/missing.txt", Count: 1})

	require.Error(t, err)
	assert.True(t, apperrors.IsResource(err))
	assert.Equal(t, "cannot open the file : /missing.txt", err.Error())
}

func TestReadCommand_Execute_SeekBeforeStart(t *testing.T) {
	path := testutil.WriteFile(t, "demo.txt", "HELLO")
	cmd := NewReadCommand(afero.NewOsFs(), testutil.Logger())

	_, err := cmd.Execute(context.Background(), ReadRequest{
		Path:   path,
		Count:  1,
		Offset: -1,
		Whence: domain.FromStart,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsResource(err))
	assert.Contains(t, err.Error(), "cannot seek")
}
