package learning

import (
	"fmt"
	"time"

	"github.com/zpam/sms-filter/pkg/corpus"
)

// TrainingStats holds every artifact of a training run that does not
// depend on the smoothing constant: the frequency table, the three
// vocabularies and their sizes, and the per-class message totals. Built
// once from the training split and frozen; every alpha the tuner tries
// derives a fresh Model view over the same stats.
type TrainingStats struct {
	Freq       *FrequencyTable `json:"frequency_table"`
	Vocabulary Vocabulary      `json:"-"`

	VocabSize     int `json:"vocab_size"`
	SpamVocabSize int `json:"spam_vocab_size"`
	HamVocabSize  int `json:"ham_vocab_size"`

	SpamMessages int `json:"spam_messages"`
	HamMessages  int `json:"ham_messages"`

	TrainedAt time.Time `json:"trained_at"`
}

// Train computes the alpha-independent artifacts from a labeled training
// split.
func Train(messages []corpus.Message) (*TrainingStats, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("training set is empty")
	}

	spam, ham := corpus.ByLabel(messages)

	spamVocab := BuildVocabulary(corpus.Texts(spam))
	hamVocab := BuildVocabulary(corpus.Texts(ham))
	vocab := spamVocab.Union(hamVocab)

	return &TrainingStats{
		Freq:          NewFrequencyTable(messages),
		Vocabulary:    vocab,
		VocabSize:     vocab.Size(),
		SpamVocabSize: spamVocab.Size(),
		HamVocabSize:  hamVocab.Size(),
		SpamMessages:  len(spam),
		HamMessages:   len(ham),
		TrainedAt:     time.Now(),
	}, nil
}

// TotalMessages returns the training split size.
func (ts *TrainingStats) TotalMessages() int {
	return ts.SpamMessages + ts.HamMessages
}

// SpamPrior is the spam message fraction of the training split.
func (ts *TrainingStats) SpamPrior() float64 {
	return float64(ts.SpamMessages) / float64(ts.TotalMessages())
}

// HamPrior is the complement of the spam prior.
func (ts *TrainingStats) HamPrior() float64 {
	return 1 - ts.SpamPrior()
}

// RebuildVocabulary reconstructs the vocabulary set from the frequency
// table. Used after loading persisted stats, where only the counts are
// stored.
func (ts *TrainingStats) RebuildVocabulary() {
	vocab := make(Vocabulary, len(ts.Freq.SpamCounts)+len(ts.Freq.HamCounts))
	for token := range ts.Freq.SpamCounts {
		vocab[token] = struct{}{}
	}
	for token := range ts.Freq.HamCounts {
		vocab[token] = struct{}{}
	}
	ts.Vocabulary = vocab
}

// Model is an immutable probability view over frozen training stats for
// one smoothing constant. Deriving a new alpha never recomputes counts.
type Model struct {
	stats *TrainingStats
	alpha float64
}

// NewModel derives a probability model. Alpha must be non-negative; an
// alpha of exactly 0 is the unsmoothed maximum-likelihood estimate and is
// allowed, but rejected when a class vocabulary is empty since the word
// probability denominator would be 0.
func NewModel(stats *TrainingStats, alpha float64) (*Model, error) {
	if stats == nil {
		return nil, fmt.Errorf("training stats are nil")
	}
	if alpha < 0 {
		return nil, fmt.Errorf("alpha must be >= 0, got %g", alpha)
	}
	if alpha == 0 && (stats.SpamVocabSize == 0 || stats.HamVocabSize == 0) {
		return nil, fmt.Errorf("alpha must be positive when a class vocabulary is empty")
	}
	return &Model{stats: stats, alpha: alpha}, nil
}

// Alpha returns the smoothing constant this view was derived with.
func (m *Model) Alpha() float64 {
	return m.alpha
}

// Stats exposes the underlying frozen training artifacts.
func (m *Model) Stats() *TrainingStats {
	return m.stats
}

// WordProb returns the Laplace-smoothed conditional probability
// P(word | label):
//
//	(count(word, label) + alpha) / (N_label_vocab + alpha * N_vocab)
//
// Strictly inside (0, 1) for any alpha > 0, even for zero-count words.
func (m *Model) WordProb(word string, label corpus.Label) float64 {
	classVocabSize := m.stats.HamVocabSize
	if label == corpus.Spam {
		classVocabSize = m.stats.SpamVocabSize
	}
	count := m.stats.Freq.Count(word, label)
	return (float64(count) + m.alpha) / (float64(classVocabSize) + m.alpha*float64(m.stats.VocabSize))
}

// Prior returns the class prior P(label).
func (m *Model) Prior(label corpus.Label) float64 {
	if label == corpus.Spam {
		return m.stats.SpamPrior()
	}
	return m.stats.HamPrior()
}

// InVocabulary reports whether the token was seen during training.
func (m *Model) InVocabulary(token string) bool {
	return m.stats.Vocabulary.Contains(token)
}
