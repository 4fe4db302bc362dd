package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zpam/sms-filter/pkg/config"
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/learning"
)

var (
	classifyConfigFile string
	classifyAlpha      float64
	classifyStdin      bool
	classifyScores     bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Classify a message as spam or ham",
	Long: `Classify a raw message using the persisted model.

The message is given as an argument, or read from stdin with --stdin
(one message per line). The smoothing constant can be overridden per
invocation without retraining.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !classifyStdin {
			return fmt.Errorf("provide a message argument or --stdin")
		}

		cfg, err := config.LoadConfig(classifyConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		alpha := cfg.Classifier.Alpha
		if cmd.Flags().Changed("alpha") {
			alpha = classifyAlpha
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		modelStore, err := newModelStore(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open model store: %v", err)
		}
		defer modelStore.Close()

		stats, err := modelStore.Load(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load model: %v", err)
		}

		model, err := learning.NewModel(stats, alpha)
		if err != nil {
			return err
		}
		classifier := learning.NewClassifier(model)

		if classifyStdin {
			return classifyStream(classifier, os.Stdin)
		}

		start := time.Now()
		result := classifier.Classify(args[0])
		duration := time.Since(start)

		fmt.Printf("Message: %s\n", args[0])
		fmt.Printf("Classification: %s\n", strings.ToUpper(string(result.Label)))
		fmt.Printf("Alpha: %g\n", alpha)
		if classifyScores {
			fmt.Printf("Spam score: %g\n", result.SpamScore)
			fmt.Printf("Ham score: %g\n", result.HamScore)
		}
		fmt.Printf("Processing time: %.2fms\n", float64(duration.Nanoseconds())/1e6)

		return nil
	},
}

// classifyStream classifies each non-empty input line and prints one
// label<TAB>text line per message.
func classifyStream(classifier *learning.Classifier, r io.Reader) error {
	var spamCount, hamCount int

	messages, err := readLines(r)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		result := classifier.Classify(msg)
		if result.Label == corpus.Spam {
			spamCount++
		} else {
			hamCount++
		}
		fmt.Printf("%s\t%s\n", result.Label, msg)
	}

	fmt.Fprintf(os.Stderr, "Classified %d messages: %d spam, %d ham\n",
		spamCount+hamCount, spamCount, hamCount)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfigFile, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().Float64VarP(&classifyAlpha, "alpha", "a", 1.0, "Smoothing constant override")
	classifyCmd.Flags().BoolVar(&classifyStdin, "stdin", false, "Read messages from stdin, one per line")
	classifyCmd.Flags().BoolVar(&classifyScores, "scores", false, "Print raw class scores")
}
