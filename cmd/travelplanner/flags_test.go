package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
)

func resetGlobalFlags(t *testing.T) {
	t.Helper()
	orig := *globalFlags
	t.Cleanup(func() { *globalFlags = orig })
	*globalFlags = GlobalFlags{Output: "text"}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}

	t.Run("defaults are valid", func(t *testing.T) {
		resetGlobalFlags(t)

		flags, err := ParseGlobalFlags(cmd)
		require.NoError(t, err)
		assert.Equal(t, internal.FormatText, flags.GetOutputFormat())
		assert.False(t, flags.IsVerbose())
	})

	t.Run("json output", func(t *testing.T) {
		resetGlobalFlags(t)
		globalFlags.Output = "json"

		flags, err := ParseGlobalFlags(cmd)
		require.NoError(t, err)
		assert.Equal(t, internal.FormatJSON, flags.GetOutputFormat())
	})

	t.Run("bad output format rejected", func(t *testing.T) {
		resetGlobalFlags(t)
		globalFlags.Output = "xml"

		_, err := ParseGlobalFlags(cmd)
		require.Error(t, err)
	})

	t.Run("verbose and quiet conflict", func(t *testing.T) {
		resetGlobalFlags(t)
		globalFlags.Verbose = true
		globalFlags.Quiet = true

		_, err := ParseGlobalFlags(cmd)
		require.Error(t, err)
	})

	t.Run("quiet suppresses verbose", func(t *testing.T) {
		resetGlobalFlags(t)
		globalFlags.Verbose = true
		globalFlags.Quiet = false

		flags, err := ParseGlobalFlags(cmd)
		require.NoError(t, err)
		assert.True(t, flags.IsVerbose())
	})
}
