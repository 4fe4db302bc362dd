package learning

import (
	"fmt"

	"github.com/zpam/sms-filter/pkg/corpus"
)

// TuneResult is one row of the tuning report.
type TuneResult struct {
	Alpha    float64
	Accuracy float64
}

// Evaluation summarizes classifier performance on a labeled collection.
type Evaluation struct {
	Total   int
	Correct int

	// Confusion counts, prediction vs truth.
	SpamAsSpam int
	SpamAsHam  int
	HamAsHam   int
	HamAsSpam  int
}

// Accuracy is the exact-match fraction.
func (e Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// Evaluate classifies every labeled message and tallies accuracy and
// confusion counts. A label outside {spam, ham} is a data-integrity
// error and is surfaced, never skipped.
func Evaluate(c *Classifier, messages []corpus.Message) (Evaluation, error) {
	var ev Evaluation

	for i, msg := range messages {
		if msg.Label != corpus.Spam && msg.Label != corpus.Ham {
			return Evaluation{}, fmt.Errorf("message %d: invalid label %q", i, msg.Label)
		}

		predicted := c.Classify(msg.Text).Label
		ev.Total++
		if predicted == msg.Label {
			ev.Correct++
		}

		switch {
		case msg.Label == corpus.Spam && predicted == corpus.Spam:
			ev.SpamAsSpam++
		case msg.Label == corpus.Spam && predicted == corpus.Ham:
			ev.SpamAsHam++
		case msg.Label == corpus.Ham && predicted == corpus.Ham:
			ev.HamAsHam++
		default:
			ev.HamAsSpam++
		}
	}

	return ev, nil
}

// Sweep derives a fresh model for every candidate alpha, reusing the
// frozen training stats, scores the validation set and records one
// (alpha, accuracy) row per candidate in input order. Selection is left
// to the caller: validation accuracy is noisy with respect to the split
// sampling, so the report is the contract, not an auto-picked maximum.
func Sweep(stats *TrainingStats, alphas []float64, validation []corpus.Message) ([]TuneResult, error) {
	if len(alphas) == 0 {
		return nil, fmt.Errorf("alpha candidate grid is empty")
	}
	if len(validation) == 0 {
		return nil, fmt.Errorf("validation set is empty")
	}

	results := make([]TuneResult, 0, len(alphas))
	for _, alpha := range alphas {
		if alpha <= 0 {
			return nil, fmt.Errorf("alpha candidates must be > 0, got %g", alpha)
		}

		model, err := NewModel(stats, alpha)
		if err != nil {
			return nil, fmt.Errorf("alpha %g: %v", alpha, err)
		}

		ev, err := Evaluate(NewClassifier(model), validation)
		if err != nil {
			return nil, fmt.Errorf("alpha %g: %v", alpha, err)
		}

		results = append(results, TuneResult{Alpha: alpha, Accuracy: ev.Accuracy()})
	}

	return results, nil
}

// ArgMax picks the row with the highest accuracy, breaking ties toward
// the smallest alpha. Convenience over the report for automated runs.
func ArgMax(results []TuneResult) (TuneResult, error) {
	if len(results) == 0 {
		return TuneResult{}, fmt.Errorf("empty tuning report")
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Accuracy > best.Accuracy || (r.Accuracy == best.Accuracy && r.Alpha < best.Alpha) {
			best = r
		}
	}
	return best, nil
}

// AlphaGrid expands a [min, max] range with the given step into an
// ordered candidate list, inclusive of max within a small tolerance.
func AlphaGrid(min, max, step float64) ([]float64, error) {
	if min <= 0 {
		return nil, fmt.Errorf("grid minimum must be > 0, got %g", min)
	}
	if step <= 0 {
		return nil, fmt.Errorf("grid step must be > 0, got %g", step)
	}
	if max < min {
		return nil, fmt.Errorf("grid maximum %g is below minimum %g", max, min)
	}

	var grid []float64
	for i := 0; ; i++ {
		alpha := min + float64(i)*step
		if alpha > max+step/1000 {
			break
		}
		grid = append(grid, alpha)
	}
	return grid, nil
}
