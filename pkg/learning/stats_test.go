package learning

import (
	"strings"
	"testing"

	"github.com/zpam/sms-filter/pkg/corpus"
)

func TestTopWords(t *testing.T) {
	stats, err := Train([]corpus.Message{
		{Label: corpus.Spam, Text: "win win win prize"},
		{Label: corpus.Spam, Text: "free prize now"},
		{Label: corpus.Ham, Text: "lunch tomorrow"},
		{Label: corpus.Ham, Text: "lunch again today"},
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	topSpam := stats.TopSpamWords(3)
	if len(topSpam) != 3 {
		t.Fatalf("TopSpamWords returned %d words, expected 3", len(topSpam))
	}
	for _, ws := range topSpam {
		if ws.Spamminess != 1.0 {
			t.Errorf("top spam word %q has spamminess %g, expected 1.0", ws.Word, ws.Spamminess)
		}
	}
	if topSpam[0].Word != "win" {
		t.Errorf("top spam word = %q, expected win (highest spam count)", topSpam[0].Word)
	}

	topHam := stats.TopHamWords(1)
	if len(topHam) != 1 || topHam[0].Word != "lunch" {
		t.Errorf("top ham word = %v, expected lunch", topHam)
	}
	if topHam[0].Spamminess != 0 {
		t.Errorf("top ham word spamminess = %g, expected 0", topHam[0].Spamminess)
	}
}

func TestPrintStats(t *testing.T) {
	stats, err := Train(scenarioTrainingSet())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	var sb strings.Builder
	stats.PrintStats(&sb)
	out := sb.String()

	for _, want := range []string{"Spam messages: 1", "Ham messages: 2", "Vocabulary size: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q", want)
		}
	}
}
