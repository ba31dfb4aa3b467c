package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/panelsched/config"
	"github.com/katalvlaran/panelsched/logger"
	"github.com/katalvlaran/panelsched/metrics"
	"github.com/katalvlaran/panelsched/roster"
	"github.com/katalvlaran/panelsched/schedule"
)

type solveFlags struct {
	output       string
	format       string
	maxPanelists int
	verify       bool
	flowAlg      string
	metricsFile  string
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Schedule the roster in FILE and rewrite it with the assignment",
		Long: "solve reads an availability table, assigns every panelist at most one of the\n" +
			"slots they marked, never exceeding the per-slot capacity, and writes the\n" +
			"table back with one x per assigned panelist. FILE is replaced unless\n" +
			"--output is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the result here instead of replacing FILE")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "input format: csv or yaml (default: by extension)")
	cmd.Flags().IntVarP(&f.maxPanelists, "max-panelists", "m", 0, "panelists per slot (default: config, then 8)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "prove the result maximum with flow and LP bounds")
	cmd.Flags().StringVar(&f.flowAlg, "flow-algorithm", "", "max-flow routine for --verify: dinic, edmonds-karp or ford-fulkerson")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runSolve(cmd *cobra.Command, g *globalFlags, f *solveFlags, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if cmd.Flags().Changed("max-panelists") {
		cfg.Schedule.MaxPanelists = f.maxPanelists
	}
	if cmd.Flags().Changed("verify") {
		cfg.Schedule.Verify = f.verify
	}
	if f.flowAlg != "" {
		cfg.Schedule.FlowAlgorithm = f.flowAlg
	}
	if f.metricsFile != "" {
		cfg.Metrics.Textfile = f.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.NewZerologLogger("solve", logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	})

	opts := []schedule.Option{schedule.WithLogger(log)}
	var reg *prometheus.Registry
	if cfg.Metrics.Textfile != "" {
		reg = prometheus.NewRegistry()
		rec, err := metrics.NewPromRecorder(cfg.Metrics.Namespace, reg)
		if err != nil {
			return err
		}
		opts = append(opts, schedule.WithRecorder(rec))
	}
	sched, err := schedule.New(cfg.Schedule, opts...)
	if err != nil {
		return err
	}

	inFormat, err := roster.ParseFormat(f.format)
	if err != nil {
		return err
	}
	r, err := roster.Load(path, inFormat)
	if err != nil {
		return err
	}

	res, err := sched.Run(ctx, r)
	if err != nil {
		return err
	}
	if err = r.Apply(res.Assigned); err != nil {
		return err
	}

	out, outFormat := path, inFormat
	if f.output != "" {
		out = f.output
		if !cmd.Flags().Changed("format") {
			outFormat = ""
		}
	}
	if err = roster.Save(out, outFormat, r); err != nil {
		return err
	}
	if reg != nil {
		if err = metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: assigned %d of %d panelists (run %s)\n",
		out, res.Matches, len(r.Panelists), res.RunID)
	if res.Report != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "verified: flow bound %d, lp bound %d\n",
			res.Report.FlowBound, res.Report.LPBound)
	}

	return nil
}
