package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goloc/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goloc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("workers", 1, "")
	flags.String("format", "", "")
	flags.StringSlice("exclude-dirs", nil, "")
	flags.Bool("by-file", false, "")
	flags.String("log-level", "", "")

	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultWorkers(), cfg.Workers)
	assert.Equal(t, config.FormatTable, cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.ExcludeDirs)
	assert.Zero(t, cfg.MaxFileSizeBytes)
	assert.False(t, cfg.Hidden)
	assert.False(t, cfg.SkipVendor)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
workers: 3
format: JSON
exclude_dirs:
  - generated
  - "**/testdata"
max_file_size: 2MB
skip_vendor: true
log:
  level: debug
languages:
  - name: HCL
    extensions: [hcl, tf]
    line_comments: ["#", "//"]
    block_comments:
      - start: "/*"
        end: "*/"
`)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, []string{"generated", "**/testdata"}, cfg.ExcludeDirs)
	assert.Equal(t, int64(2_000_000), cfg.MaxFileSizeBytes)
	assert.True(t, cfg.SkipVendor)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Languages, 1)

	profiles, err := cfg.Profiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "HCL", profiles[0].Name())
	assert.Equal(t, []string{".hcl", ".tf"}, profiles[0].Extensions())
	assert.Equal(t, "*/", profiles[0].BlockComments()[0].End)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GOLOC_WORKERS", "7")
	t.Setenv("GOLOC_LOG_LEVEL", "warn")
	t.Setenv("GOLOC_FORMAT", "yaml")

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, config.FormatYAML, cfg.Format)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "workers: 3\nformat: json\n")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--workers", "9", "--exclude-dirs", "gen,third_party"}))

	cfg, err := config.LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, config.FormatJSON, cfg.Format, "unset flag must not override file")
	assert.Equal(t, []string{"gen", "third_party"}, cfg.ExcludeDirs)
	assert.False(t, cfg.ByFile)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    error
	}{
		{name: "workers", content: "workers: 0\n", want: config.ErrInvalidWorkers},
		{name: "format", content: "format: xml\n", want: config.ErrInvalidFormat},
		{name: "size", content: "max_file_size: lots\n", want: config.ErrInvalidMaxFileSize},
		{name: "size overflow", content: "max_file_size: 10EiB\n", want: config.ErrInvalidMaxFileSize},
		{name: "log level", content: "log:\n  level: loud\n", want: config.ErrInvalidLogLevel},
		{
			name:    "duplicate language",
			content: "languages:\n  - name: X\n    extensions: [x]\n  - name: X\n    extensions: [y]\n",
			want:    config.ErrDuplicateLanguage,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, testCase.content), nil)
			require.ErrorIs(t, err, testCase.want)
		})
	}
}
