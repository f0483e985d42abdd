package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/blang/semver/v4"
)

var (
	Version    = "dev"
	CommitHash = "dev"
)

const probeTimeout = 3 * time.Second

// MinCurl is the first curl release that knows every write-out variable
// httpstat asks for (remote_ip, local_ip and friends).
var MinCurl = semver.MustParse("7.29.0")

// CurlVersion runs `bin --version` and parses the reported release.
func CurlVersion(ctx context.Context, bin string) (semver.Version, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version") //nolint:gosec
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return semver.Version{}, fmt.Errorf("run %s --version: %w", bin, err)
	}
	return ParseCurlVersion(stdout.String())
}

// ParseCurlVersion extracts the release from `curl --version` output, whose
// first line reads like "curl 8.5.0 (x86_64-pc-linux-gnu) libcurl/8.5.0 ...".
func ParseCurlVersion(out string) (semver.Version, error) {
	firstLine, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(firstLine)
	if len(fields) < 2 || fields[0] != "curl" {
		return semver.Version{}, fmt.Errorf("unrecognized curl version output: '%v'", firstLine)
	}
	v, err := semver.ParseTolerant(fields[1])
	if err != nil {
		return semver.Version{}, fmt.Errorf("parse curl version '%v': %w", fields[1], err)
	}
	return v, nil
}

// Supported reports whether curl v writes a complete timing record.
func Supported(v semver.Version) bool {
	return v.GTE(MinCurl)
}
