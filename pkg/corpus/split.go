package corpus

import (
	"fmt"
	"math/rand"
)

// Split holds the three disjoint partitions of a corpus.
type Split struct {
	Training   []Message
	Validation []Message
	Test       []Message
}

// SplitRatios configures the partition proportions. They must be positive
// for training and non-negative otherwise, and sum to 1.
type SplitRatios struct {
	Train      float64
	Validation float64
	Test       float64
}

// DefaultSplitRatios is the 80/10/10 partition the pipeline was tuned with.
func DefaultSplitRatios() SplitRatios {
	return SplitRatios{Train: 0.8, Validation: 0.1, Test: 0.1}
}

// Validate checks the ratio invariants.
func (r SplitRatios) Validate() error {
	if r.Train <= 0 {
		return fmt.Errorf("train ratio must be > 0, got %g", r.Train)
	}
	if r.Validation < 0 || r.Test < 0 {
		return fmt.Errorf("validation and test ratios must be >= 0")
	}
	sum := r.Train + r.Validation + r.Test
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("split ratios must sum to 1, got %g", sum)
	}
	return nil
}

// Partition shuffles messages with a seeded source and cuts them into
// training/validation/test subsets. The same seed and input always produce
// the same partition. The input slice is not modified.
func Partition(messages []Message, ratios SplitRatios, seed int64) (*Split, error) {
	if err := ratios.Validate(); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("cannot partition an empty corpus")
	}

	shuffled := make([]Message, len(messages))
	copy(shuffled, messages)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainEnd := int(float64(len(shuffled)) * ratios.Train)
	validationEnd := trainEnd + int(float64(len(shuffled))*ratios.Validation)
	if trainEnd == 0 {
		return nil, fmt.Errorf("training split is empty: corpus too small for ratio %g", ratios.Train)
	}
	if validationEnd > len(shuffled) {
		validationEnd = len(shuffled)
	}

	return &Split{
		Training:   shuffled[:trainEnd],
		Validation: shuffled[trainEnd:validationEnd],
		Test:       shuffled[validationEnd:],
	}, nil
}
