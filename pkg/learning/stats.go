package learning

import (
	"fmt"
	"io"
	"sort"
)

// WordStats contains per-word training statistics.
type WordStats struct {
	Word       string  `json:"word"`
	SpamCount  int     `json:"spam_count"`
	HamCount   int     `json:"ham_count"`
	Spamminess float64 `json:"spamminess"`
}

// wordStats computes the spamminess of one word: the spam share of its
// relative frequency across the two classes (0 = pure ham, 1 = pure spam).
func (ts *TrainingStats) wordStats(word string) WordStats {
	spamCount := ts.Freq.SpamCounts[word]
	hamCount := ts.Freq.HamCounts[word]

	var spamFreq, hamFreq float64
	if ts.SpamVocabSize > 0 {
		spamFreq = float64(spamCount) / float64(ts.SpamVocabSize)
	}
	if ts.HamVocabSize > 0 {
		hamFreq = float64(hamCount) / float64(ts.HamVocabSize)
	}

	var spamminess float64
	if spamFreq+hamFreq > 0 {
		spamminess = spamFreq / (spamFreq + hamFreq)
	}

	return WordStats{
		Word:       word,
		SpamCount:  spamCount,
		HamCount:   hamCount,
		Spamminess: spamminess,
	}
}

// TopSpamWords returns the limit most spam-leaning vocabulary words.
func (ts *TrainingStats) TopSpamWords(limit int) []WordStats {
	return ts.topWords(limit, func(a, b WordStats) bool {
		if a.Spamminess != b.Spamminess {
			return a.Spamminess > b.Spamminess
		}
		return a.SpamCount > b.SpamCount
	})
}

// TopHamWords returns the limit most ham-leaning vocabulary words.
func (ts *TrainingStats) TopHamWords(limit int) []WordStats {
	return ts.topWords(limit, func(a, b WordStats) bool {
		if a.Spamminess != b.Spamminess {
			return a.Spamminess < b.Spamminess
		}
		return a.HamCount > b.HamCount
	})
}

func (ts *TrainingStats) topWords(limit int, less func(a, b WordStats) bool) []WordStats {
	var words []WordStats
	for word := range ts.Vocabulary {
		words = append(words, ts.wordStats(word))
	}

	sort.Slice(words, func(i, j int) bool {
		if less(words[i], words[j]) {
			return true
		}
		if less(words[j], words[i]) {
			return false
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// PrintStats writes a human-readable training summary.
func (ts *TrainingStats) PrintStats(w io.Writer) {
	fmt.Fprintf(w, "🧠 Naive Bayes Training Summary\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Training Data:\n")
	fmt.Fprintf(w, "  Spam messages: %d\n", ts.SpamMessages)
	fmt.Fprintf(w, "  Ham messages: %d\n", ts.HamMessages)
	fmt.Fprintf(w, "  Vocabulary size: %d\n", ts.VocabSize)
	fmt.Fprintf(w, "  Spam vocabulary: %d\n", ts.SpamVocabSize)
	fmt.Fprintf(w, "  Ham vocabulary: %d\n", ts.HamVocabSize)
	fmt.Fprintf(w, "  Spam prior: %.4f\n", ts.SpamPrior())
	fmt.Fprintf(w, "  Ham prior: %.4f\n", ts.HamPrior())

	if !ts.TrainedAt.IsZero() {
		fmt.Fprintf(w, "  Trained at: %s\n", ts.TrainedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(w, "\n📈 Top Spam Words:\n")
	for i, word := range ts.TopSpamWords(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, word.Word, word.Spamminess, word.SpamCount, word.HamCount)
	}

	fmt.Fprintf(w, "\n📉 Top Ham Words:\n")
	for i, word := range ts.TopHamWords(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, word.Word, word.Spamminess, word.SpamCount, word.HamCount)
	}

	fmt.Fprintf(w, "\n")
}
