package learning

import (
	"math"
	"testing"

	"github.com/zpam/sms-filter/pkg/corpus"
)

func newTestClassifier(t *testing.T, messages []corpus.Message, alpha float64) *Classifier {
	t.Helper()

	stats, err := Train(messages)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	model, err := NewModel(stats, alpha)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return NewClassifier(model)
}

func TestClassifySpamScenario(t *testing.T) {
	classifier := newTestClassifier(t, scenarioTrainingSet(), 1.0)

	result := classifier.Classify("win money")
	if result.Label != corpus.Spam {
		t.Errorf("classify(win money) = %s, expected spam", result.Label)
	}
	if result.SpamScore <= result.HamScore {
		t.Errorf("spam score %g not above ham score %g", result.SpamScore, result.HamScore)
	}
}

func TestClassifyOutOfVocabularyFallsBackToPriors(t *testing.T) {
	classifier := newTestClassifier(t, scenarioTrainingSet(), 1.0)

	result := classifier.Classify("zzz qqq")

	// No token overlaps the vocabulary: both scores degenerate to the
	// priors, and ham has the larger one (2 of 3 training messages).
	if result.Label != corpus.Ham {
		t.Errorf("classify(zzz qqq) = %s, expected ham", result.Label)
	}
	if math.Abs(result.SpamScore-1.0/3.0) > 1e-12 {
		t.Errorf("spam score = %g, expected the spam prior 1/3", result.SpamScore)
	}
	if math.Abs(result.HamScore-2.0/3.0) > 1e-12 {
		t.Errorf("ham score = %g, expected the ham prior 2/3", result.HamScore)
	}
}

func TestClassifyTieResolvesToSpam(t *testing.T) {
	balanced := []corpus.Message{
		{Label: corpus.Spam, Text: "win money"},
		{Label: corpus.Ham, Text: "hello there"},
	}
	classifier := newTestClassifier(t, balanced, 1.0)

	// Equal priors and no vocabulary overlap produce an exact tie.
	result := classifier.Classify("zzz qqq")
	if result.SpamScore != result.HamScore {
		t.Fatalf("expected an exact tie, got %g vs %g", result.SpamScore, result.HamScore)
	}
	if result.Label != corpus.Spam {
		t.Errorf("tie resolved to %s, expected spam", result.Label)
	}
}

func TestClassifyDuplicateTokensContributeOnce(t *testing.T) {
	classifier := newTestClassifier(t, scenarioTrainingSet(), 1.0)
	model := classifier.Model()

	once := classifier.Classify("win")
	repeated := classifier.Classify("win win win")

	if once.SpamScore != repeated.SpamScore || once.HamScore != repeated.HamScore {
		t.Errorf("repeated token changed scores: %+v vs %+v", once, repeated)
	}

	expected := model.Prior(corpus.Spam) * model.WordProb("win", corpus.Spam)
	if math.Abs(once.SpamScore-expected) > 1e-12 {
		t.Errorf("spam score = %g, expected %g", once.SpamScore, expected)
	}
}

func TestClassifyUnseenTokensAreNeutral(t *testing.T) {
	classifier := newTestClassifier(t, scenarioTrainingSet(), 1.0)

	known := classifier.Classify("win money")
	padded := classifier.Classify("win money zzzzz qqqqq")

	if known.SpamScore != padded.SpamScore || known.HamScore != padded.HamScore {
		t.Errorf("unseen tokens changed scores: %+v vs %+v", known, padded)
	}
}

func TestClassifyZeroAlphaZeroesClassScore(t *testing.T) {
	classifier := newTestClassifier(t, scenarioTrainingSet(), 0)

	// "win" has ham count 0, so the unsmoothed ham score collapses to 0.
	result := classifier.Classify("win")
	if result.HamScore != 0 {
		t.Errorf("ham score = %g, expected exactly 0", result.HamScore)
	}
	if result.Label != corpus.Spam {
		t.Errorf("classify(win) = %s, expected spam", result.Label)
	}
}

func TestClassifyWithAlpha(t *testing.T) {
	stats, err := Train(scenarioTrainingSet())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	result, err := ClassifyWithAlpha(stats, 0.5, "win money")
	if err != nil {
		t.Fatalf("ClassifyWithAlpha failed: %v", err)
	}
	if result.Label != corpus.Spam {
		t.Errorf("classify(win money) = %s, expected spam", result.Label)
	}

	if _, err := ClassifyWithAlpha(stats, -1, "win money"); err == nil {
		t.Error("expected error for negative alpha")
	}
}
