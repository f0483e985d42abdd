package version

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestParseCurlVersion(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    semver.Version
		wantErr bool
	}{
		{
			name: "linux build",
			out: "curl 8.5.0 (x86_64-pc-linux-gnu) libcurl/8.5.0 OpenSSL/3.0.13 zlib/1.3\n" +
				"Release-Date: 2023-12-06\n",
			want: semver.MustParse("8.5.0"),
		},
		{
			name: "two component version",
			out:  "curl 7.29 (x86_64-redhat-linux-gnu)",
			want: semver.MustParse("7.29.0"),
		},
		{
			name: "pre-release suffix",
			out:  "curl 8.10.0-DEV (x86_64-pc-linux-gnu)",
			want: semver.MustParse("8.10.0-DEV"),
		},
		{
			name:    "not curl",
			out:     "wget 1.21",
			wantErr: true,
		},
		{
			name:    "empty",
			out:     "",
			wantErr: true,
		},
		{
			name:    "garbage version",
			out:     "curl latest",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurlVersion(tt.out)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCurlVersion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				require.True(t, tt.want.EQ(got), "got %v", got)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	require.True(t, Supported(semver.MustParse("7.29.0")))
	require.True(t, Supported(semver.MustParse("8.5.0")))
	require.False(t, Supported(semver.MustParse("7.28.1")))
}

func TestCurlVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	bin := filepath.Join(t.TempDir(), "curl")
	script := "#!/bin/sh\necho 'curl 7.88.1 (aarch64-apple-darwin22.0) libcurl/7.88.1'\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o700))

	v, err := CurlVersion(context.Background(), bin)
	require.NoError(t, err)
	require.Equal(t, "7.88.1", v.String())

	_, err = CurlVersion(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
