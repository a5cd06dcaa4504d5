package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/montepi/archive"
	"github.com/arloliu/montepi/format"
	"github.com/arloliu/montepi/montecarlo"
	"github.com/arloliu/montepi/regression"
	"github.com/arloliu/montepi/stats"
)

type runFlags struct {
	sizes       []int
	attempts    int
	radius      float64
	low         float64
	high        float64
	seed        uint64
	seedSet     bool
	configPath  string
	emit        bool
	encoding    string
	compression string
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the trials and print per-tier summaries",
		Example: `  montepi run --sizes 100,1000,10000 --attempts 5 --seed 42
  montepi run --config run.yaml --emit --compression zstd > run.mcpi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), gf.verbose)
			defer func() { _ = logger.Sync() }()

			rf.seedSet = cmd.Flags().Changed("seed")
			if rf.configPath != "" {
				fc, err := loadConfigFile(rf.configPath)
				if err != nil {
					return err
				}
				rf.merge(cmd, fc)
			}

			return runTrials(cmd.OutOrStdout(), logger, rf)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&rf.sizes, "sizes", slices.Clone(montecarlo.DefaultSampleSizes), "sample-size tiers, comma separated")
	f.IntVar(&rf.attempts, "attempts", montecarlo.DefaultAttempts, "independent attempts per tier")
	f.Float64Var(&rf.radius, "radius", montecarlo.DefaultRadius, "quarter-circle radius")
	f.Float64Var(&rf.low, "low", montecarlo.DefaultBounds.Low, "lower coordinate bound (inclusive)")
	f.Float64Var(&rf.high, "high", montecarlo.DefaultBounds.High, "upper coordinate bound (exclusive)")
	f.Uint64Var(&rf.seed, "seed", 0, "run seed; random when not set")
	f.StringVar(&rf.configPath, "config", "", "YAML file with run settings; flags override it")
	f.BoolVar(&rf.emit, "emit", false, "write the binary archive to stdout instead of tables")
	f.StringVar(&rf.encoding, "encoding", "gorilla", "archive value encoding: gorilla|raw")
	f.StringVar(&rf.compression, "compression", "none", "archive compression: none|zstd|s2|lz4")

	return cmd
}

// merge fills every flag the user did not set explicitly from the config file.
// A seed taken from the file counts as set, so the run replays it.
func (rf *runFlags) merge(cmd *cobra.Command, fc fileConfig) {
	changed := cmd.Flags().Changed

	if len(fc.SampleSizes) > 0 && !changed("sizes") {
		rf.sizes = fc.SampleSizes
	}
	if fc.Attempts != nil && !changed("attempts") {
		rf.attempts = *fc.Attempts
	}
	if fc.Radius != nil && !changed("radius") {
		rf.radius = *fc.Radius
	}
	if fc.Low != nil && !changed("low") {
		rf.low = *fc.Low
	}
	if fc.High != nil && !changed("high") {
		rf.high = *fc.High
	}
	if fc.Seed != nil && !changed("seed") {
		rf.seed = *fc.Seed
		rf.seedSet = true
	}
	if fc.Encoding != "" && !changed("encoding") {
		rf.encoding = fc.Encoding
	}
	if fc.Compression != "" && !changed("compression") {
		rf.compression = fc.Compression
	}
}

func (rf *runFlags) options(logger *zap.Logger) []montecarlo.Option {
	opts := []montecarlo.Option{
		montecarlo.WithSampleSizes(rf.sizes...),
		montecarlo.WithAttempts(rf.attempts),
		montecarlo.WithRadius(rf.radius),
		montecarlo.WithBounds(rf.low, rf.high),
		montecarlo.WithLogger(logger),
	}
	if rf.seedSet {
		opts = append(opts, montecarlo.WithSeed(rf.seed))
	}

	return opts
}

func runTrials(w io.Writer, logger *zap.Logger, rf runFlags) error {
	enc, err := format.ParseEncoding(rf.encoding)
	if err != nil {
		return err
	}
	comp, err := format.ParseCompression(rf.compression)
	if err != nil {
		return err
	}

	cfg, err := montecarlo.NewConfig(rf.options(logger)...)
	if err != nil {
		return err
	}

	logger.Info("running trials",
		zap.Uint64("seed", cfg.Seed),
		zap.Ints("sample_sizes", cfg.SampleSizes),
		zap.Int("attempts", cfg.Attempts),
	)

	res, err := montecarlo.RunTrials(cfg)
	if err != nil {
		return err
	}

	if rf.emit {
		return emitArchive(w, logger, res, enc, comp)
	}

	return printReport(w, res)
}

func emitArchive(w io.Writer, logger *zap.Logger, res *montecarlo.Results, enc format.EncodingType, comp format.CompressionType) error {
	encoder, err := archive.NewEncoder(archive.WithValueEncoding(enc), archive.WithCompression(comp))
	if err != nil {
		return err
	}

	data, st, err := encoder.EncodeWithStats(res)
	if err != nil {
		return err
	}

	logger.Info("archive encoded",
		zap.Stringer("encoding", enc),
		zap.Stringer("compression", comp),
		zap.Int64("payload_bytes", st.OriginalSize),
		zap.Int64("stored_bytes", st.CompressedSize),
		zap.Float64("space_savings_pct", st.SpaceSavings()),
	)

	_, err = w.Write(data)

	return err
}

func printReport(w io.Writer, res *montecarlo.Results) error {
	tiers, err := stats.SummarizeTiers(res, math.Pi)
	if err != nil {
		return err
	}
	fits, err := regression.AnalyzeEach(res)
	if err != nil {
		return err
	}

	runTable := [][]string{
		{"seed", strconv.FormatUint(res.Seed, 10)},
		{"radius", ff(res.Radius)},
		{"bounds", res.Bounds.String()},
		{"tiers", fmt.Sprint(res.SampleSizes)},
	}

	tierTable := [][]string{{"N", "attempts", "mean", "std dev", "min", "Q1", "median", "Q3", "max", "mean |err|", "outliers"}}
	for _, t := range tiers {
		tierTable = append(tierTable, []string{
			strconv.Itoa(t.SampleSize),
			strconv.Itoa(t.Count),
			ff(t.Mean), ff(t.StdDev),
			ff(t.Min), ff(t.Q1), ff(t.Median), ff(t.Q3), ff(t.Max),
			ff(t.MeanAbsError),
			strconv.Itoa(len(t.Outliers)),
		})
	}

	fitTable := [][]string{{"N", "best model", "formula", "R²", "rate"}}
	for _, fit := range fits {
		rate := "-"
		if p := fit.Power(); p != nil {
			rate = fmt.Sprintf("%.3f", p.Coefficients[1])
		}
		fitTable = append(fitTable, []string{
			strconv.Itoa(fit.SampleSize),
			fit.BestFit.Type.String(),
			fit.BestFit.Formula,
			fmt.Sprintf("%.4f", fit.BestFit.RSquared),
			rate,
		})
	}

	sections := []struct {
		title  string
		header bool
		data   [][]string
	}{
		{title: "Run", data: runTable},
		{title: "Final estimates per tier", header: true, data: tierTable},
		{title: "Convergence", header: true, data: fitTable},
	}

	for _, s := range sections {
		if s.header && len(s.data) == 1 {
			continue
		}

		table := pterm.DefaultTable.WithData(s.data)
		if s.header {
			table = table.WithHasHeader().WithHeaderRowSeparator("-")
		}
		out, err := table.Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", s.title, out); err != nil {
			return err
		}
	}

	return nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
