package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hbagdi/httpstat/pkg/config"
	"github.com/hbagdi/httpstat/pkg/log"
	"github.com/hbagdi/httpstat/pkg/version"
	"go.uber.org/zap"
)

func executeVersion(ctx context.Context) error {
	fmt.Printf("httpstat %s (commit: %s)\n", version.Version, version.CommitHash)

	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		log.Logger.Debug("version: skip curl probe", zap.Error(err))
		return nil
	}
	v, err := version.CurlVersion(ctx, cfg.CurlBin)
	if err != nil {
		log.Logger.Debug("version: curl probe failed", zap.Error(err))
		return nil
	}
	fmt.Printf("curl %s\n", v)
	if !version.Supported(v) {
		fmt.Fprintf(os.Stderr, "warning: curl %s is older than %s, "+
			"connection details will be missing\n", v, version.MinCurl)
	}
	return nil
}
