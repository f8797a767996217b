package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goserg/batchrating/internal/config"
	"github.com/goserg/batchrating/internal/elo"
	"github.com/goserg/batchrating/internal/logger"
	"github.com/goserg/batchrating/internal/metrics"
	"github.com/goserg/batchrating/internal/render"
	"github.com/goserg/batchrating/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string
	LogLevel   string
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "batchrating",
		Short: "Fixed-point batch Elo ratings",
		Long: "Rates teams from scored games by applying simultaneous Elo updates\n" +
			"until no rating moves by more than epsilon in a round.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := render.ParseFormat(opts.Format)
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to toml config")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", string(render.Text), "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level, overrides config")

	cmd.AddCommand(NewRateCommand(opts))
	cmd.AddCommand(NewSqliteCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

type env struct {
	cfg     config.Config
	log     *logrus.Logger
	metrics *metrics.Metrics
	service *service.RatingService
	format  render.Format
}

func (o *RootOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.New(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	log, err := logger.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	solver, err := elo.NewSolver(cfg.Solver, log.WithField("component", "solver"))
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return nil, err
	}
	m := metrics.New()
	return &env{
		cfg:     cfg,
		log:     log,
		metrics: m,
		service: service.New(solver, m, log.WithField("component", "service")),
		format:  format,
	}, nil
}

// print writes ratings to stdout, or the last round to stderr when the
// computation did not converge.
func (e *env) print(stdout, stderr io.Writer, ratings service.Ratings, err error) error {
	if err != nil {
		var noConv *service.NoConvergenceError
		if errors.As(err, &noConv) {
			if rerr := render.Failure(stderr, e.format, noConv.Rounds, noConv.Players); rerr != nil {
				return errors.Join(err, rerr)
			}
		}
		return err
	}
	return render.Ratings(stdout, e.format, ratings.Players)
}
