package learning

import (
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/textproc"
)

// FrequencyTable maps every training token to its summed per-message
// occurrence count in each class. Tokens absent from a class read as 0,
// so the table behaves as an outer join of the two class vocabularies.
type FrequencyTable struct {
	SpamCounts map[string]int `json:"spam_counts"`
	HamCounts  map[string]int `json:"ham_counts"`
}

// NewFrequencyTable builds the table in a single pass over the training
// messages with a hash accumulator, equivalent to counting each vocabulary
// word against each class collection but without the quadratic rescan.
func NewFrequencyTable(messages []corpus.Message) *FrequencyTable {
	ft := &FrequencyTable{
		SpamCounts: make(map[string]int),
		HamCounts:  make(map[string]int),
	}

	for _, msg := range messages {
		counts := ft.HamCounts
		if msg.Label == corpus.Spam {
			counts = ft.SpamCounts
		}
		for _, token := range textproc.NormalizeAndTokenize(msg.Text) {
			counts[token]++
		}
	}

	return ft
}

// Count returns the occurrence count of word in the given class. Missing
// entries are 0 by construction.
func (ft *FrequencyTable) Count(word string, label corpus.Label) int {
	if label == corpus.Spam {
		return ft.SpamCounts[word]
	}
	return ft.HamCounts[word]
}

// CountOccurrences counts how many token slots across all given raw
// messages equal word. Retained as the direct per-word form of the
// contract; NewFrequencyTable is the batched equivalent.
func CountOccurrences(word string, messages []string) int {
	var n int
	for _, msg := range messages {
		for _, token := range textproc.NormalizeAndTokenize(msg) {
			if token == word {
				n++
			}
		}
	}
	return n
}
