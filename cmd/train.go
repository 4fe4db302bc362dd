package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zpam/sms-filter/pkg/config"
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/learning"
	"github.com/zpam/sms-filter/pkg/profiler"
)

var (
	trainCorpusPath string
	trainConfigFile string
	trainSeed       int64
	trainTimings    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the Naive Bayes model on a labeled corpus",
	Long: `Train the multinomial Naive Bayes model on a tab-delimited corpus of
labeled messages (label<TAB>text per line).

The corpus is partitioned into training, validation and test splits with a
seeded shuffle; only the training split feeds the model. The frozen
artifacts (word frequencies, vocabulary sizes, class priors) are persisted
to the configured model store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(trainConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if trainCorpusPath != "" {
			cfg.Corpus.Path = trainCorpusPath
		}
		if cmd.Flags().Changed("seed") {
			cfg.Split.Seed = trainSeed
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		prof := profiler.New()

		fmt.Printf("🧠 Naive Bayes Training\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Corpus: %s\n", cfg.Corpus.Path)
		fmt.Printf("🎲 Split seed: %d (%.0f/%.0f/%.0f)\n",
			cfg.Split.Seed,
			cfg.Split.TrainRatio*100, cfg.Split.ValidationRatio*100, cfg.Split.TestRatio*100)
		fmt.Printf("💾 Model backend: %s\n\n", cfg.Model.Backend)

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

		timer = prof.Start("train")
		stats, err := learning.Train(split.Training)
		timer.Stop()
		if err != nil {
			return fmt.Errorf("training failed: %v", err)
		}

		modelStore, err := newModelStore(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open model store: %v", err)
		}
		defer modelStore.Close()

		timer = prof.Start("save model")
		err = modelStore.Save(context.Background(), stats)
		timer.Stop()
		if err != nil {
			return fmt.Errorf("failed to save model: %v", err)
		}

		fmt.Printf("🎉 Training Complete!\n")
		fmt.Printf("📊 Corpus messages: %d (train %d, validation %d, test %d)\n",
			len(messages), len(split.Training), len(split.Validation), len(split.Test))
		fmt.Printf("\n")
		stats.PrintStats(os.Stdout)

		if trainTimings {
			prof.PrintReport(os.Stdout)
		}

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainCorpusPath, "corpus", "i", "", "Corpus file path (overrides config)")
	trainCmd.Flags().StringVarP(&trainConfigFile, "config", "c", "", "Configuration file path")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "Split seed (overrides config)")
	trainCmd.Flags().BoolVar(&trainTimings, "timings", false, "Print per-stage timing report")
}
