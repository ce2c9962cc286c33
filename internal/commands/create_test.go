package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/permission"
	"filemgmt/internal/testutil"
)

func TestCreateCommand_Execute_Success(t *testing.T) {
	// Arrange
	fs := afero.NewMemMapFs()
	cmd := NewCreateCommand(fs, testutil.Logger())

	// Act
	err := cmd.Execute(context.Background(), CreateRequest{
		Path:       "/demo.txt",
		Permission: permission.Parse(644),
	})

	// Assert
	require.NoError(t, err)
	info, err := fs.Stat("/demo.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	assert.Zero(t, info.Size())
}

func TestCreateCommand_Execute_TruncatesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/demo.txt", []byte("HELLO"), 0o644))
	cmd := NewCreateCommand(fs, testutil.Logger())

	err := cmd.Execute(context.Background(), CreateRequest{Path: "/demo.txt", Permission: permission.Parse(600)})

	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/demo.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCreateCommand_Execute_OnDisk(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected os.FileMode
	}{
		{name: "owner_rw_group_r_other_r", value: 644, expected: 0o644},
		{name: "owner_only", value: 600, expected: 0o600},
		{name: "special_digit_ignored", value: 4640, expected: 0o640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "demo.txt")
			cmd := NewCreateCommand(afero.NewOsFs(), testutil.Logger())

			err := cmd.Execute(context.Background(), CreateRequest{
				Path:       path,
				Permission: permission.Parse(tt.value),
			})

			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			// umask can only clear bits
			assert.Equal(t, os.FileMode(0), info.Mode().Perm()&^tt.expected)
			assert.Zero(t, info.Mode()&os.ModeSetuid)
		})
	}
}

func TestCreateCommand_Execute_CannotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "demo.txt")
	cmd := NewCreateCommand(afero.NewOsFs(), testutil.Logger())

	err := cmd.Execute(context.Background(), CreateRequest{Path: path, Permission: permission.Parse(644)})

	require.Error(t, err)
	assert.True(t, apperrors.IsResource(err))
	assert.Equal(t, "cannot create file with file name "+path, err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateCommand_Execute_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	cmd := NewCreateCommand(fs, testutil.Logger())

	err := cmd.Execute(context.Background(), CreateRequest{Path: "/demo.txt", Permission: permission.Parse(644)})

	require.Error(t, err)
	assert.True(t, apperrors.IsResource(err))
}
