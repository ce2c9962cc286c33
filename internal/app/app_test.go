package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filemgmt/internal/adapters/filesystem"
	"filemgmt/internal/domain"
	"filemgmt/internal/mocks"
)

func TestNewApp_Defaults(t *testing.T) {
	app, err := NewApp(context.Background(), WithLogOutput(io.Discard))

	require.NoError(t, err)
	assert.NotNil(t, app.FileSystem)
	assert.NotNil(t, app.Metadata)
	assert.NotNil(t, app.ConfigProvider)
	assert.NotNil(t, app.Logger)
	assert.Equal(t, domain.DefaultSettings(), app.Settings)
	assert.False(t, app.Config.Verbose)

	reader := app.NewTokenReader(strings.NewReader("tok"), io.Discard)
	token, err := reader.ReadToken(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestNewApp_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	app, err := NewApp(context.Background(), WithVerbose(true), WithLogOutput(&buf))

	require.NoError(t, err)
	app.Logger.Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "Initializing filemgmt")
}

func TestNewApp_DefaultLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	app, err := NewApp(context.Background(), WithLogOutput(&buf))

	require.NoError(t, err)
	app.Logger.Info("info line")
	assert.Empty(t, buf.String())
}

func TestNewApp_Overrides(t *testing.T) {
	fs := filesystem.NewMemory()
	reader := mocks.NewMockMetadataReader(t)
	settings := domain.DefaultSettings()
	settings.Help.Document = "/docs/help.txt"

	app, err := NewApp(context.Background(),
		WithLogOutput(io.Discard),
		WithFileSystem(fs),
		WithMetadataReader(reader),
		WithSettings(settings),
	)

	require.NoError(t, err)
	assert.Same(t, fs, app.FileSystem)
	assert.Same(t, reader, app.Metadata)
	assert.Equal(t, "/docs/help.txt", app.Settings.Help.Document)
}

func TestNewApp_TokenReaderFactory(t *testing.T) {
	tokens := mocks.NewMockTokenReader(t)

	app, err := NewApp(context.Background(),
		WithLogOutput(io.Discard),
		WithTokenReaderFactory(func(io.Reader, io.Writer) domain.TokenReader { return tokens }),
	)

	require.NoError(t, err)
	assert.Same(t, tokens, app.NewTokenReader(nil, nil))
}
