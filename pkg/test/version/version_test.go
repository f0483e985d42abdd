package version

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hbagdi/httpstat/pkg/cmd"
	"github.com/hbagdi/httpstat/pkg/test/util"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	t.Setenv("HTTPSTAT_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("HTTPSTAT_CURL_BIN", filepath.Join(t.TempDir(), "no-such-curl"))

	c := util.NewStdCapture()
	defer c.Cleanup()
	err := cmd.Run(context.Background(), "test-binary-name", "--version")
	if err != nil {
		t.Errorf("expected err to be nil but got %v", err)
	}
	c.Stop()

	if string(c.Stdout()) != "httpstat dev (commit: dev)\n" {
		t.Errorf("unexpected output")
	}
}

func TestVersionWithCurl(t *testing.T) {
	util.FakeCurl(t, "curl 7.19.7 (x86_64-redhat-linux-gnu) libcurl/7.19.7\n", "", 0)

	c := util.NewStdCapture()
	defer c.Cleanup()
	err := cmd.Run(context.Background(), "test-binary-name", "--version")
	c.Stop()

	require.NoError(t, err)
	require.Equal(t, "httpstat dev (commit: dev)\ncurl 7.19.7\n", string(c.Stdout()))
	require.Contains(t, string(c.Stderr()), "older than 7.29.0")
}

func TestBareVersionWordIsURL(t *testing.T) {
	util.FakeCurl(t, "", "", 0)

	c := util.NewStdCapture()
	defer c.Cleanup()
	err := cmd.Run(context.Background(), "test-binary-name", "version")
	c.Stop()

	// handed to curl as a URL, so there is no version banner
	require.Error(t, err)
	require.Equal(t, 1, cmd.ExitCode(err))
	require.NotContains(t, string(c.Stdout()), "httpstat dev")
	require.Equal(t, "No timing metrics found in curl output.\n", string(c.Stderr()))
}
