package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hbagdi/httpstat/pkg/config"
	"github.com/hbagdi/httpstat/pkg/executor"
	"github.com/hbagdi/httpstat/pkg/header"
	"github.com/hbagdi/httpstat/pkg/log"
	"github.com/hbagdi/httpstat/pkg/metrics"
	"github.com/hbagdi/httpstat/pkg/palette"
	"github.com/hbagdi/httpstat/pkg/printer"
	"github.com/hbagdi/httpstat/pkg/util"
	"go.uber.org/zap"
)

const minArgs = 2

// Run executes httpstat with args, where args[0] is the program name.
func Run(ctx context.Context, args ...string) error {
	if len(args) < minArgs {
		_ = executeHelp()
		return fmt.Errorf("missing URL")
	}
	url := args[1]
	switch url {
	case "-h", "--help":
		return executeHelp()
	case "--version":
		return executeVersion(ctx)
	}

	curlArgs := args[minArgs:]
	if err := executor.ValidateArgs(curlArgs); err != nil {
		return err
	}

	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log.SetDebug(cfg.Debug)
	log.Logger.Debug("loaded configuration", zap.Any("config", cfg))

	e, err := executor.NewExecutor(executor.Opts{
		Bin:    cfg.CurlBin,
		Logger: log.Logger,
	})
	if err != nil {
		return fmt.Errorf("initialize executor: %v", err)
	}
	res, err := e.Execute(ctx, url, curlArgs)
	if err != nil {
		var transferErr *executor.TransferError
		if errors.As(err, &transferErr) {
			fmt.Fprintf(os.Stderr, "curl error: %s\n", transferErr.Stderr)
			return &ExitError{Code: transferErr.ExitCode}
		}
		return err
	}
	if len(res.Stderr) > 0 {
		// warnings from a successful transfer
		log.Logger.Debug("curl wrote to stderr", zap.Int("bytes", len(res.Stderr)))
		_, _ = os.Stderr.Write(res.Stderr)
	}
	return report(cfg, string(res.Stdout))
}

func painterFor(cfg config.Config) palette.Painter {
	if cfg.NoColor {
		return palette.NewPainter(palette.ModeNever)
	}
	return palette.NewPainter(palette.ModeAuto)
}

// report prints everything httpstat shows for a completed transfer.
// A timing record that cannot be read skips the diagram but not the rest
// of the output.
func report(cfg config.Config, blob string) error {
	p := printer.NewPrinter(printer.Opts{
		Writer:  os.Stdout,
		Painter: painterFor(cfg),
	})

	raw, metricsErr := metrics.Extract(blob)
	if metricsErr != nil {
		log.Logger.Debug("failed to extract timing record", zap.Error(metricsErr))
	}

	if cfg.ShowIP && metricsErr == nil {
		if err := p.PrintConnection(raw); err != nil {
			return err
		}
	}

	head, rest, err := header.Split(blob)
	switch {
	case err == nil:
		if err := p.PrintHeaders(head); err != nil {
			return err
		}
		if err := printBody(p, cfg, responseBody(rest)); err != nil {
			return err
		}
	case errors.Is(err, header.ErrNoHeaders):
		log.Logger.Debug("no header/body separator in curl output, skipping headers")
	default:
		return err
	}

	switch {
	case errors.Is(metricsErr, metrics.ErrMissingPayload):
		fmt.Fprintln(os.Stderr, "No timing metrics found in curl output.")
		return &ExitError{Code: 1}
	case metricsErr != nil:
		fmt.Fprintln(os.Stderr, "Failed to parse timing metrics.")
		return &ExitError{Code: 1}
	}
	if err := p.PrintTiming(raw.Cumulative()); err != nil {
		return err
	}
	if cfg.ShowSpeed {
		return p.PrintSpeed(raw)
	}
	return nil
}

// responseBody strips the trailing timing record from the text that
// follows the headers.
func responseBody(rest string) []byte {
	start, _, err := metrics.Locate(rest)
	if err != nil {
		return []byte(rest)
	}
	return []byte(rest[:start])
}

func printBody(p printer.Printer, cfg config.Config, body []byte) error {
	if cfg.ShowBody {
		if err := p.PrintBody(body, cfg.BodyLimit); err != nil {
			return err
		}
	}
	if !cfg.SaveBody {
		return nil
	}
	path, err := saveBody(body)
	if err != nil {
		log.Logger.Warn("failed to save response body", zap.Error(err))
		return nil
	}
	return p.PrintSavedBody(path)
}

func saveBody(body []byte) (string, error) {
	dir, err := util.EnsureCacheDir()
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, "body-*")
	if err != nil {
		return "", fmt.Errorf("create body file: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			log.Logger.Debug("failed to close body file", zap.Error(err))
		}
	}()
	if _, err := f.Write(body); err != nil {
		return "", fmt.Errorf("write body file: %w", err)
	}
	return f.Name(), nil
}
