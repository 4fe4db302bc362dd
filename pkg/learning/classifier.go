package learning

import (
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/textproc"
)

// Result is the classification outcome for one message. The scores are
// the unnormalized products prior * P(w|class); only their ordering is
// meaningful.
type Result struct {
	Label     corpus.Label
	SpamScore float64
	HamScore  float64
}

// Classifier scores raw messages under a probability model.
type Classifier struct {
	model *Model
}

// NewClassifier wraps a derived model.
func NewClassifier(model *Model) *Classifier {
	return &Classifier{model: model}
}

// Model returns the underlying probability view.
func (c *Classifier) Model() *Model {
	return c.model
}

// Classify normalizes and tokenizes the message, multiplies the class
// prior by the conditional probability of every distinct in-vocabulary
// token, and predicts the higher-scoring class. Out-of-vocabulary tokens
// are neutral: they contribute factor 1 to both classes rather than a
// smoothed penalty. Exact ties, including the all-tokens-unseen case
// with equal priors, resolve to spam.
//
// Duplicate tokens inside one message contribute their probability once,
// not once per occurrence.
func (c *Classifier) Classify(rawText string) Result {
	spamScore := c.model.Prior(corpus.Spam)
	hamScore := c.model.Prior(corpus.Ham)

	seen := make(map[string]struct{})
	for _, token := range textproc.NormalizeAndTokenize(rawText) {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		if !c.model.InVocabulary(token) {
			continue
		}
		spamScore *= c.model.WordProb(token, corpus.Spam)
		hamScore *= c.model.WordProb(token, corpus.Ham)
	}

	label := corpus.Ham
	if spamScore >= hamScore {
		label = corpus.Spam
	}

	return Result{Label: label, SpamScore: spamScore, HamScore: hamScore}
}

// ClassifyWithAlpha derives a throwaway model view for alpha over the
// same frozen stats and classifies with it. Counts are never recomputed,
// so per-call alpha overrides are cheap.
func ClassifyWithAlpha(stats *TrainingStats, alpha float64, rawText string) (Result, error) {
	model, err := NewModel(stats, alpha)
	if err != nil {
		return Result{}, err
	}
	return NewClassifier(model).Classify(rawText), nil
}
