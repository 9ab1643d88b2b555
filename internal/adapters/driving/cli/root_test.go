package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincal-labs/fincal-cli/internal/adapters/driven/config/file"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "fincal", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["version"])
	assert.True(t, names["generate"])
}

func TestRootCommand_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")

	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "1.2.3\n", out.String())
}

func TestSetServices(t *testing.T) {
	t.Cleanup(func() {
		calendarService = nil
		clipboardWriter = nil
		settings = file.Settings{}
	})

	SetServices(&Services{Settings: file.Settings{BaseURL: "http://localhost/data"}})

	assert.Equal(t, "http://localhost/data", settings.BaseURL)
}

func TestSetServices_NilIsNoOp(t *testing.T) {
	t.Cleanup(func() { settings = file.Settings{} })
	settings = file.Settings{BaseURL: "kept"}

	SetServices(nil)

	assert.Equal(t, "kept", settings.BaseURL)
}

func TestRunTUI_MissingServices(t *testing.T) {
	t.Cleanup(func() {
		calendarService = nil
		clipboardWriter = nil
	})
	calendarService = nil
	clipboardWriter = nil

	err := runTUI(rootCmd, nil)

	assert.Error(t, err)
}

func TestGenerateCommand_Flags(t *testing.T) {
	for _, name := range []string{"data", "out", "watch"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(name), name)
	}
}
