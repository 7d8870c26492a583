package app

import (
	"testing"

	"github.com/specialistvlad/cratemover/internal/plan"
	"github.com/specialistvlad/cratemover/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with the buffers receiving its output and its debug logs.
func SetupAppTest(t *testing.T, cfg *Config, loaders ...plan.Loader) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg, loaders...)
	testutil.DumpLogs(t, logBuffer)

	return testApp, outBuffer, logBuffer
}
