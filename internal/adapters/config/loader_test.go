package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orbis/internal/adapters/config"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testLoader(t *testing.T) *config.Loader {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	settings, err := testLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), settings)
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	t.Parallel()

	content := `
render:
  width: 2048
  height: 1024
  projection: mercator
  cache: false
frames:
  start: 10
  end: 20
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o600))

	settings, err := testLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2048, settings.Width)
	assert.Equal(t, 1024, settings.Height)
	assert.Equal(t, "mercator", settings.Projection)
	assert.False(t, settings.Cache)
	assert.Equal(t, domain.FrameRange{Start: 10, End: 20, Step: 1}, settings.Frames)

	// Untouched fields keep their defaults.
	defaults := config.Defaults()
	assert.Equal(t, defaults.SubWidth, settings.SubWidth)
	assert.Equal(t, defaults.SubHeight, settings.SubHeight)
	assert.Equal(t, defaults.Format, settings.Format)
}

func TestLoadExplicitZeroOverrides(t *testing.T) {
	t.Parallel()

	// A present field overrides even when its value is zero; only absent
	// fields fall back to the defaults.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename),
		[]byte("render:\n  workers: 0\n  cubeSize: 0\n"), 0o600))

	settings, err := testLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Workers)
	assert.Equal(t, 0, settings.CubeSize)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename),
		[]byte("render: [not a mapping"), 0o600))

	_, err := testLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}
