// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/matrixio"
	"github.com/katalvlaran/linalg/matrix"
)

type luReport struct {
	L           matrixio.Document `yaml:"l" json:"l"`
	U           matrixio.Document `yaml:"u" json:"u"`
	P           matrixio.Document `yaml:"p" json:"p"`
	Pivot       []int             `yaml:"pivot,flow" json:"pivot"`
	PivotSign   int               `yaml:"pivot_sign" json:"pivot_sign"`
	NonSingular bool              `yaml:"non_singular" json:"non_singular"`
	Det         *matrixio.Scalar  `yaml:"det,omitempty" json:"det,omitempty"`
}

type qrReport struct {
	Q        matrixio.Document `yaml:"q" json:"q"`
	R        matrixio.Document `yaml:"r" json:"r"`
	H        matrixio.Document `yaml:"h" json:"h"`
	FullRank bool              `yaml:"full_rank" json:"full_rank"`
}

type cholReport struct {
	L   matrixio.Document `yaml:"l" json:"l"`
	SPD bool              `yaml:"spd" json:"spd"`
}

type svdReport struct {
	U            matrixio.Document `yaml:"u" json:"u"`
	V            matrixio.Document `yaml:"v" json:"v"`
	Values       []matrixio.Scalar `yaml:"values,flow" json:"values"`
	Norm2        matrixio.Scalar   `yaml:"norm2" json:"norm2"`
	Cond         matrixio.Scalar   `yaml:"cond" json:"cond"`
	Rank         int               `yaml:"rank" json:"rank"`
	RoundedRank  int               `yaml:"rounded_rank" json:"rounded_rank"`
	LowRankIndex int               `yaml:"low_rank_index" json:"low_rank_index"`
	Converged    bool              `yaml:"converged" json:"converged"`
}

type solveReport struct {
	X matrixio.Document `yaml:"x" json:"x"`
}

type invReport struct {
	Inverse matrixio.Document `yaml:"inverse" json:"inverse"`
}

type detReport struct {
	Det matrixio.Scalar `yaml:"det" json:"det"`
}

type rankReport struct {
	Rank int `yaml:"rank" json:"rank"`
}

type condReport struct {
	Cond matrixio.Scalar `yaml:"cond" json:"cond"`
}

func luCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "lu",
		Short: "LU factorization with partial pivoting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			lu, err := matrix.NewLU(a, cfg.options()...)
			if err != nil {
				return err
			}
			rep := luReport{
				L:           matrixio.FromMatrix(lu.L()),
				U:           matrixio.FromMatrix(lu.U()),
				P:           matrixio.FromMatrix(lu.P()),
				Pivot:       lu.Pivot(),
				PivotSign:   lu.PivotSign(),
				NonSingular: lu.IsNonSingular(),
			}
			if det, err := lu.Det(); err == nil {
				s := matrixio.Scalar(det)
				rep.Det = &s
			}

			return cfg.write(cmd, rep)
		},
	}
}

func qrCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "qr",
		Short: "Householder QR factorization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			qr, err := matrix.NewQR(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, qrReport{
				Q:        matrixio.FromMatrix(qr.Q()),
				R:        matrixio.FromMatrix(qr.R()),
				H:        matrixio.FromMatrix(qr.H()),
				FullRank: qr.IsFullRank(),
			})
		},
	}
}

func cholCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "chol",
		Short: "Cholesky factorization of a symmetric positive definite matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			ch, err := matrix.NewCholesky(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, cholReport{L: matrixio.FromMatrix(ch.L()), SPD: ch.IsSPD()})
		},
	}
}

func svdCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "svd",
		Short: "Singular value decomposition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			svd, err := matrix.NewSVD(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, svdReport{
				U:            matrixio.FromMatrix(svd.U()),
				V:            matrixio.FromMatrix(svd.V()),
				Values:       matrixio.Scalars(svd.Values()),
				Norm2:        matrixio.Scalar(svd.Norm2()),
				Cond:         matrixio.Scalar(svd.Cond()),
				Rank:         svd.Rank(),
				RoundedRank:  svd.RoundedRank(),
				LowRankIndex: svd.LowRankIndex(),
				Converged:    svd.Converged(),
			})
		},
	}
}

func solveCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·X = B (least squares when A is not square)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			b, err := cfg.read(cmd, cfg.rhs)
			if err != nil {
				return err
			}
			x, err := matrix.Solve(a, b, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, solveReport{X: matrixio.FromMatrix(x)})
		},
	}
	cmd.Flags().StringVar(&cfg.rhs, "rhs", "", "right-hand side document B")
	_ = cmd.MarkFlagRequired("rhs")

	return cmd
}

func detCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant of a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			d, err := matrix.Det(a)
			if err != nil {
				return err
			}

			return cfg.write(cmd, detReport{Det: matrixio.Scalar(d)})
		},
	}
}

func invCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "inv",
		Short: "Inverse (pseudo-inverse via least squares when tall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, invReport{Inverse: matrixio.FromMatrix(inv)})
		},
	}
}

func rankCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Numerical rank from the singular values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			r, err := matrix.Rank(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, rankReport{Rank: r})
		},
	}
}

func condCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "cond",
		Short: "2-norm condition number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cfg.read(cmd, cfg.file)
			if err != nil {
				return err
			}
			c, err := matrix.Cond(a, cfg.options()...)
			if err != nil {
				return err
			}

			return cfg.write(cmd, condReport{Cond: matrixio.Scalar(c)})
		},
	}
}
