package main

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig runs the test in an empty directory with no SDK_EXPORTS_*
// variables in effect.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{"SDK_EXPORTS_API", "SDK_EXPORTS_SDK_INDEX", "SDK_EXPORTS_LOG_LEVEL", "SDK_EXPORTS_UPDATE"} {
		t.Setenv(name, "")
	}
}

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	cmd := newRootCmd(io.Discard, io.Discard)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd.Flags()
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolateConfig(t)
	cfg, err := loadSettings(parsedFlags(t))
	require.NoError(t, err)
	assert.Equal(t, settings{
		update:   false,
		api:      defaultAPIPath,
		sdkIndex: defaultSDKIndex,
		logLevel: defaultLogLevel,
	}, cfg)
}

func TestLoadSettingsFlags(t *testing.T) {
	isolateConfig(t)
	cfg, err := loadSettings(parsedFlags(t, "--update", "--api", "a.mdx", "--sdk-index", "b.ts"))
	require.NoError(t, err)
	assert.True(t, cfg.update)
	assert.Equal(t, "a.mdx", cfg.api)
	assert.Equal(t, "b.ts", cfg.sdkIndex)
}

func TestLoadSettingsEnvironment(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SDK_EXPORTS_API", "env.mdx")
	t.Setenv("SDK_EXPORTS_SDK_INDEX", "env.ts")
	t.Setenv("SDK_EXPORTS_LOG_LEVEL", "debug")
	t.Setenv("SDK_EXPORTS_UPDATE", "true")

	cfg, err := loadSettings(parsedFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "env.mdx", cfg.api)
	assert.Equal(t, "env.ts", cfg.sdkIndex)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.False(t, cfg.update, "update must only come from the command line")

	cfg, err = loadSettings(parsedFlags(t, "--api", "flag.mdx"))
	require.NoError(t, err)
	assert.Equal(t, "flag.mdx", cfg.api)
	assert.Equal(t, "env.ts", cfg.sdkIndex)
}

func TestLoadSettingsConfigFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(".sdk-exports.yaml", []byte("api: file.mdx\nsdk-index: file.ts\nlog-level: info\n"), 0o644))

	cfg, err := loadSettings(parsedFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "file.mdx", cfg.api)
	assert.Equal(t, "file.ts", cfg.sdkIndex)
	assert.Equal(t, "info", cfg.logLevel)

	t.Setenv("SDK_EXPORTS_API", "env.mdx")
	cfg, err = loadSettings(parsedFlags(t, "--sdk-index", "flag.ts"))
	require.NoError(t, err)
	assert.Equal(t, "env.mdx", cfg.api)
	assert.Equal(t, "flag.ts", cfg.sdkIndex)
}

func TestLoadSettingsMalformedConfigFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(".sdk-exports.yaml", []byte("api: [unclosed\n"), 0o644))

	_, err := loadSettings(parsedFlags(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
