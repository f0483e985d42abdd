package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Record is a timing record as curl writes it for a 100ms request.
const Record = `{
            "time_namelookup": 0.001,
            "time_connect": 0.002,
            "time_appconnect": 0.040,
            "time_pretransfer": 0.050,
            "time_redirect": 0.000,
            "time_starttransfer": 0.080,
            "time_total": 0.100,
            "speed_download": 2048.000,
            "speed_upload": 0.000,
            "remote_ip": "93.184.216.34",
            "remote_port": "443",
            "local_ip": "10.0.0.2",
            "local_port": "50123"
        }`

// FakeCurl installs a curl stand-in that prints stdout and stderr and exits
// with code, and points httpstat at it through the environment. Colors
// are disabled and no config file is read.
func FakeCurl(t *testing.T, stdout, stderr string, code int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	outFile := filepath.Join(dir, "stdout")
	errFile := filepath.Join(dir, "stderr")
	script := fmt.Sprintf("#!/bin/sh\ncat '%s'\ncat '%s' >&2\nexit %d\n", outFile, errFile, code)

	files := map[string]string{
		outFile:                    stdout,
		errFile:                    stderr,
		filepath.Join(dir, "curl"): script,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o700); err != nil {
			t.Fatalf("write %v: %v", path, err)
		}
	}

	t.Setenv("HTTPSTAT_CURL_BIN", filepath.Join(dir, "curl"))
	t.Setenv("HTTPSTAT_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("HTTPSTAT_NO_COLOR", "true")
}
