// SPDX-License-Identifier: MIT
// Command linalg factors and solves dense matrices read from YAML or JSON.
//
//	linalg svd --file a.yaml
//	linalg solve --file a.yaml --rhs b.yaml --format json
//	echo 'rows: [[4, 3], [6, 3]]' | linalg det
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("linalg failed")
		stop()
		os.Exit(1)
	}
}
