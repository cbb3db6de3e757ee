package output

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingLevels(t *testing.T) {
	defer SetupLogging(LogOptions{})

	SetupLogging(LogOptions{})
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())

	SetupLogging(LogOptions{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestSetupLoggingTimestampOverride(t *testing.T) {
	defer SetupLogging(LogOptions{})

	off := false
	SetupLogging(LogOptions{Verbose: true, Timestamps: &off})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestScopedLoggers(t *testing.T) {
	require.NotNil(t, BundleLogger("demo"))
	require.NotNil(t, UnitLogger("demo", "app"))
}
