package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zpam/sms-filter/pkg/corpus"
)

var (
	generateCount     int
	generateOutput    string
	generateSpamRatio float64
	generateSeed      int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic labeled SMS corpus",
	Long:  `Generate a tab-delimited labeled SMS dataset for testing and benchmarking`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateCount <= 0 {
			return fmt.Errorf("count must be greater than 0")
		}
		if generateSpamRatio < 0 || generateSpamRatio > 1 {
			return fmt.Errorf("spam-ratio must be between 0 and 1")
		}

		generator := newMessageGenerator(generateSeed)

		spamCount := int(float64(generateCount) * generateSpamRatio)
		hamCount := generateCount - spamCount

		fmt.Printf("🧪 Generating test messages...\n")
		fmt.Printf("💬 Total messages: %d\n", generateCount)
		fmt.Printf("🚫 Spam messages: %d (%.1f%%)\n", spamCount, generateSpamRatio*100)
		fmt.Printf("✅ Ham messages: %d (%.1f%%)\n", hamCount, (1-generateSpamRatio)*100)
		fmt.Printf("📂 Output file: %s\n\n", generateOutput)

		start := time.Now()

		var sb strings.Builder
		for i := 0; i < spamCount; i++ {
			sb.WriteString(string(corpus.Spam))
			sb.WriteByte('\t')
			sb.WriteString(generator.SpamMessage())
			sb.WriteByte('\n')
		}
		for i := 0; i < hamCount; i++ {
			sb.WriteString(string(corpus.Ham))
			sb.WriteByte('\t')
			sb.WriteString(generator.HamMessage())
			sb.WriteByte('\n')
		}

		if err := os.WriteFile(generateOutput, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("failed to write corpus: %v", err)
		}

		duration := time.Since(start)
		fmt.Printf("✅ Generation complete!\n")
		fmt.Printf("⏱️ Time taken: %v\n", duration)

		return nil
	},
}

// messageGenerator produces plausible SMS texts from templates.
type messageGenerator struct {
	rand *rand.Rand

	spamTemplates []string
	hamTemplates  []string
	prizes        []string
	shortcodes    []string
	names         []string
	places        []string
}

func newMessageGenerator(seed int64) *messageGenerator {
	return &messageGenerator{
		rand: rand.New(rand.NewSource(seed)),
		spamTemplates: []string{
			"URGENT! You have won a %PRIZE%! Call %CODE% now to claim",
			"Congratulations! Your number was selected for a free %PRIZE%. Text WIN to %CODE%",
			"WINNER! Claim your guaranteed %PRIZE% today, reply YES to %CODE%",
			"Free entry to win %PRIZE%! Txt PLAY to %CODE% now, limited offer",
			"You have been chosen! %PRIZE% waiting, call %CODE% before midnight",
			"Cash prize alert: %PRIZE% unclaimed in your name, ring %CODE% immediately",
			"Hot singles near %PLACE% want to meet you! Reply DATE to %CODE%",
			"Your mobile was awarded %PRIZE%, call %CODE% from a landline to collect",
		},
		hamTemplates: []string{
			"Hey %NAME%, are we still on for lunch at %PLACE% tomorrow",
			"Running late, see you at %PLACE% in twenty minutes",
			"Can you pick up milk on the way home",
			"Happy birthday %NAME%! Hope you have a lovely day",
			"Meeting moved to the afternoon, %NAME% will send the new room",
			"Just landed, will call you when I get to %PLACE%",
			"Thanks for yesterday, it was really nice catching up",
			"Did you see the match last night, unbelievable finish",
			"Ok sounds good, talk later",
			"Dont forget the dentist appointment in the morning",
		},
		prizes:     []string{"iPhone", "holiday to Spain", "500 pound gift card", "brand new car", "cash jackpot"},
		shortcodes: []string{"80082", "87121", "62442", "09061701461", "85023"},
		names:      []string{"sam", "alex", "jo", "chris", "maria", "dave"},
		places:     []string{"town", "the office", "campus", "the station", "home"},
	}
}

func (g *messageGenerator) SpamMessage() string {
	return g.fill(g.spamTemplates[g.rand.Intn(len(g.spamTemplates))])
}

func (g *messageGenerator) HamMessage() string {
	return g.fill(g.hamTemplates[g.rand.Intn(len(g.hamTemplates))])
}

func (g *messageGenerator) fill(template string) string {
	msg := template
	msg = strings.ReplaceAll(msg, "%PRIZE%", g.prizes[g.rand.Intn(len(g.prizes))])
	msg = strings.ReplaceAll(msg, "%CODE%", g.shortcodes[g.rand.Intn(len(g.shortcodes))])
	msg = strings.ReplaceAll(msg, "%NAME%", g.names[g.rand.Intn(len(g.names))])
	msg = strings.ReplaceAll(msg, "%PLACE%", g.places[g.rand.Intn(len(g.places))])
	return msg
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1000, "Number of messages to generate")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "corpus.tsv", "Output corpus file")
	generateCmd.Flags().Float64Var(&generateSpamRatio, "spam-ratio", 0.15, "Fraction of spam messages")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 1, "Random seed")
}
