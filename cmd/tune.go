package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zpam/sms-filter/pkg/config"
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/learning"
	"github.com/zpam/sms-filter/pkg/profiler"
)

var (
	tuneConfigFile string
	tuneCorpusPath string
	tuneAuto       bool
	tuneAlpha      float64
	tuneTimings    bool
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Sweep smoothing constants and report validation accuracy",
	Long: `Sweep the configured smoothing-constant grid against the validation
split and print one (alpha, accuracy) row per candidate.

Counts and vocabulary sizes are computed once from the training split;
each candidate only re-derives the probability formula, so the sweep is
cheap. The report is meant for inspection, since validation accuracy is
noisy with respect to the split sampling; --auto additionally picks the
highest-accuracy alpha (ties toward the smallest) and scores it against
the held-out test split.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(tuneConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if tuneCorpusPath != "" {
			cfg.Corpus.Path = tuneCorpusPath
		}

		grid, err := learning.AlphaGrid(cfg.Tuning.AlphaMin, cfg.Tuning.AlphaMax, cfg.Tuning.AlphaStep)
		if err != nil {
			return fmt.Errorf("invalid tuning grid: %v", err)
		}

		prof := profiler.New()

		fmt.Printf("🔬 Smoothing Constant Tuning\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Corpus: %s\n", cfg.Corpus.Path)
		fmt.Printf("🎲 Split seed: %d\n", cfg.Split.Seed)
		fmt.Printf("📐 Grid: %g to %g step %g (%d candidates)\n\n",
			cfg.Tuning.AlphaMin, cfg.Tuning.AlphaMax, cfg.Tuning.AlphaStep, len(grid))

		timer := prof.Start("load corpus")
		messages, err := corpus.LoadFile(cfg.Corpus.Path)
		timer.Stop()
		if err != nil {
			return err
		}

		timer = prof.Start("partition")
		split, err := corpus.Partition(messages, splitRatios(cfg), cfg.Split.Seed)
		timer.Stop()
		if err != nil {
			return err
		}
		if len(split.Validation) == 0 {
			return fmt.Errorf("validation split is empty, adjust split ratios")
		}

		timer = prof.Start("train")
		stats, err := learning.Train(split.Training)
		timer.Stop()
		if err != nil {
			return fmt.Errorf("training failed: %v", err)
		}

		timer = prof.Start("sweep")
		results, err := learning.Sweep(stats, grid, split.Validation)
		timer.Stop()
		if err != nil {
			return fmt.Errorf("tuning sweep failed: %v", err)
		}

		fmt.Printf("%8s  %s\n", "alpha", "validation accuracy")
		fmt.Printf("────────────────────────────\n")
		for _, r := range results {
			fmt.Printf("%8.2f  %.4f\n", r.Alpha, r.Accuracy)
		}
		fmt.Printf("\n")

		chosen := cfg.Classifier.Alpha
		if cmd.Flags().Changed("alpha") {
			chosen = tuneAlpha
		}
		if tuneAuto {
			best, err := learning.ArgMax(results)
			if err != nil {
				return err
			}
			chosen = best.Alpha
			fmt.Printf("🏆 Best candidate: alpha=%.2f (validation accuracy %.4f)\n", best.Alpha, best.Accuracy)
		}

		if len(split.Test) > 0 {
			model, err := learning.NewModel(stats, chosen)
			if err != nil {
				return err
			}
			ev, err := learning.Evaluate(learning.NewClassifier(model), split.Test)
			if err != nil {
				return fmt.Errorf("test evaluation failed: %v", err)
			}
			fmt.Printf("🎯 Final: alpha=%.2f, test accuracy %.4f (%d/%d)\n",
				chosen, ev.Accuracy(), ev.Correct, ev.Total)
		}

		if tuneTimings {
			fmt.Printf("\n")
			prof.PrintReport(os.Stdout)
		}

		return nil
	},
}

func init() {
	tuneCmd.Flags().StringVarP(&tuneConfigFile, "config", "c", "", "Configuration file path")
	tuneCmd.Flags().StringVarP(&tuneCorpusPath, "corpus", "i", "", "Corpus file path (overrides config)")
	tuneCmd.Flags().BoolVar(&tuneAuto, "auto", false, "Automatically select the best alpha from the sweep")
	tuneCmd.Flags().Float64VarP(&tuneAlpha, "alpha", "a", 1.0, "Alpha for the final test evaluation (ignored with --auto)")
	tuneCmd.Flags().BoolVar(&tuneTimings, "timings", false, "Print per-stage timing report")
}
