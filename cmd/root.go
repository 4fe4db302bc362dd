package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zpam-sms",
	Short: "Naive Bayes spam classifier for short text messages",
	Long: `zpam-sms trains a multinomial Naive Bayes model on a labeled SMS corpus
and classifies new messages as spam or ham.

The pipeline covers corpus loading and splitting, vocabulary and word
frequency accounting, Laplace-smoothed probability estimation, and a
smoothing-constant tuning loop driven by held-out validation accuracy.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("zpam-sms - Naive Bayes SMS spam classifier")
		fmt.Println("Use 'zpam-sms --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(tuneCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(configCmd)
}
