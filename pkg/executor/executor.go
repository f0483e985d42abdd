package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const defaultBin = "curl"

// writeOut is the curl write-out template. curl substitutes every
// %{variable} once the transfer completes, leaving a JSON object at the
// very end of stdout.
const writeOut = `{
            "time_namelookup": %{time_namelookup},
            "time_connect": %{time_connect},
            "time_appconnect": %{time_appconnect},
            "time_pretransfer": %{time_pretransfer},
            "time_redirect": %{time_redirect},
            "time_starttransfer": %{time_starttransfer},
            "time_total": %{time_total},
            "speed_download": %{speed_download},
            "speed_upload": %{speed_upload},
            "remote_ip": "%{remote_ip}",
            "remote_port": "%{remote_port}",
            "local_ip": "%{local_ip}",
            "local_port": "%{local_port}"
        }`

type Executor struct {
	bin    string
	logger *zap.Logger
}

type Opts struct {
	// Bin is the curl binary to run, "curl" by default.
	Bin    string
	Logger *zap.Logger
}

func NewExecutor(opts Opts) (*Executor, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("no logger")
	}
	e := &Executor{
		bin:    opts.Bin,
		logger: opts.Logger,
	}
	if e.bin == "" {
		e.bin = defaultBin
	}
	return e, nil
}

// Result is the captured output of a completed transfer.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// TransferError is returned when curl exits with a non-zero status.
type TransferError struct {
	ExitCode int
	Stderr   string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("curl exited with code %d: %s", e.ExitCode,
		strings.TrimSpace(e.Stderr))
}

// Args returns the full curl argument list for a request to url.
// Headers, body and the timing record are all written to stdout.
func Args(url string, extra []string) []string {
	args := []string{
		"-w", writeOut,
		"-D", "-",
		"-o", "-",
		"-s", "-S",
	}
	args = append(args, extra...)
	return append(args, url)
}

// Execute performs a single transfer and captures its output.
func (e *Executor) Execute(ctx context.Context, url string, extra []string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.bin, Args(url, extra)...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug("executing curl",
		zap.String("bin", e.bin),
		zap.String("url", url),
		zap.Strings("extra-args", extra))
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{}, &TransferError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return Result{}, fmt.Errorf("run %s: %w", e.bin, err)
	}
	e.logger.Debug("executed curl with no error",
		zap.Int("stdout-bytes", stdout.Len()))
	return Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}, nil
}
