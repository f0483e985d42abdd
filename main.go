package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hbagdi/httpstat/pkg/cmd"
	"github.com/hbagdi/httpstat/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Run(ctx, os.Args...)
	stop()
	_ = log.Logger.Sync()
	if err != nil {
		if !cmd.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
