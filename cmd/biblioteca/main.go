package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MauriDarwoft/biblioteca/internal/app"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Last-resort boundary: a panic anywhere in the UI should leave the
	// terminal with a readable message instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "biblioteca: something went wrong, please restart")
			code = 1
		}
	}()

	envFile := flag.String("env", "", "path to a .env file (optional)")
	prefsPath := flag.String("prefs", "", "override prefs file path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		EnvFile:   *envFile,
		PrefsPath: *prefsPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "biblioteca: %v\n", err)
		return 1
	}
	return 0
}
