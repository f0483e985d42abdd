package disallowedoption

import (
	"context"
	"errors"
	"testing"

	"github.com/hbagdi/httpstat/pkg/cmd"
	"github.com/hbagdi/httpstat/pkg/executor"
	"github.com/hbagdi/httpstat/pkg/test/util"
	"github.com/stretchr/testify/require"
)

func TestDisallowedOption(t *testing.T) {
	// curl must never run: this stand-in would fail the transfer
	util.FakeCurl(t, "", "should not run", 99)

	for _, opt := range []string{"-w", "--write-out", "-D", "--dump-header", "-o", "--output", "-s", "--silent"} {
		t.Run(opt, func(t *testing.T) {
			err := cmd.Run(context.Background(), "httpstat", "https://example.com", "-k", opt, "x")
			require.Error(t, err)
			require.Equal(t, 1, cmd.ExitCode(err))
			require.False(t, cmd.Reported(err))

			var optErr *executor.DisallowedOptionError
			require.True(t, errors.As(err, &optErr))
			require.Equal(t, opt+" is not allowed in extra curl args", err.Error())
		})
	}
}
