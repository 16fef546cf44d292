// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linalg/internal/matrixio"
	"github.com/katalvlaran/linalg/matrix"
)

// errBadFlag marks flag values rejected before any matrix is read.
var errBadFlag = errors.New("linalg: invalid flag value")

// config holds the values bound to the command-line flags.
type config struct {
	file      string
	rhs       string
	format    string
	logLevel  string
	maxSweeps int

	out    matrixio.Format
	logger zerolog.Logger
}

// bindFlags registers the flags shared by every subcommand.
func bindFlags(fs *pflag.FlagSet, cfg *config) {
	fs.StringVarP(&cfg.file, "file", "f", "", "input matrix document (default: stdin)")
	fs.StringVar(&cfg.format, "format", string(matrixio.FormatYAML), "output format: yaml|json")
	fs.StringVar(&cfg.logLevel, "log-level", zerolog.InfoLevel.String(), "log level: trace|debug|info|warn|error")
	fs.IntVar(&cfg.maxSweeps, "max-sweeps", matrix.DefaultMaxSweeps, "SVD QR-sweep cap per singular value")
}

// Execute builds the command tree and runs it against args.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense matrix factorizations and linear solves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.prepare(cmd.ErrOrStderr())
		},
	}
	bindFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		luCmd(cfg),
		qrCmd(cfg),
		cholCmd(cfg),
		svdCmd(cfg),
		solveCmd(cfg),
		detCmd(cfg),
		invCmd(cfg),
		rankCmd(cfg),
		condCmd(cfg),
	)

	return root
}

// prepare validates the flags and builds the logger.
func (c *config) prepare(errOut io.Writer) error {
	f, err := matrixio.ParseFormat(c.format)
	if err != nil {
		return err
	}
	c.out = f

	lvl, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("%w: --log-level %q", errBadFlag, c.logLevel)
	}
	if c.maxSweeps <= 0 {
		return fmt.Errorf("%w: --max-sweeps must be > 0, got %d", errBadFlag, c.maxSweeps)
	}
	c.logger = zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()

	return nil
}

// options maps the flags onto matrix options.
func (c *config) options() []matrix.Option {
	return []matrix.Option{
		matrix.WithLogger(c.logger),
		matrix.WithMaxSweeps(c.maxSweeps),
	}
}

// read decodes the matrix at path, or stdin when path is empty or "-".
func (c *config) read(cmd *cobra.Command, path string) (*matrix.Dense, error) {
	if err := cmd.Context().Err(); err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}

	m, err := matrixio.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	rows, cols := m.Shape()
	c.logger.Debug().Str("source", displayName(path)).Int("rows", rows).Int("cols", cols).Msg("matrix loaded")

	return m, nil
}

func (c *config) write(cmd *cobra.Command, v any) error {
	return matrixio.Encode(cmd.OutOrStdout(), v, c.out)
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}
