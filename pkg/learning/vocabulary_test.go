package learning

import (
	"testing"
)

func TestBuildVocabulary(t *testing.T) {
	messages := []string{
		"Hello how are you",
		"WIN money now!",
		"See you tomorrow",
	}

	vocab := BuildVocabulary(messages)

	expected := []string{"hello", "how", "are", "you", "win", "money", "now", "see", "tomorrow"}
	if vocab.Size() != len(expected) {
		t.Errorf("vocabulary size = %d, expected %d", vocab.Size(), len(expected))
	}
	for _, word := range expected {
		if !vocab.Contains(word) {
			t.Errorf("vocabulary missing %q", word)
		}
	}
	if vocab.Contains("WIN") {
		t.Error("vocabulary contains unnormalized token")
	}
}

func TestVocabularyDuplicatesCollapse(t *testing.T) {
	vocab := BuildVocabulary([]string{"spam spam spam", "spam again"})
	if vocab.Size() != 2 {
		t.Errorf("vocabulary size = %d, expected 2", vocab.Size())
	}
}

func TestVocabularyUnionProperty(t *testing.T) {
	spamMessages := []string{"win money now", "free money"}
	hamMessages := []string{"see you tomorrow", "money for lunch"}

	spamVocab := BuildVocabulary(spamMessages)
	hamVocab := BuildVocabulary(hamMessages)
	combined := BuildVocabulary(append(append([]string{}, spamMessages...), hamMessages...))
	union := spamVocab.Union(hamVocab)

	if combined.Size() != union.Size() {
		t.Errorf("combined vocabulary size %d != union size %d", combined.Size(), union.Size())
	}
	for word := range spamVocab {
		if !combined.Contains(word) {
			t.Errorf("combined vocabulary missing spam word %q", word)
		}
	}
	for word := range hamVocab {
		if !combined.Contains(word) {
			t.Errorf("combined vocabulary missing ham word %q", word)
		}
	}

	// "money" is in both classes and counts toward both sizes independently.
	if !spamVocab.Contains("money") || !hamVocab.Contains("money") {
		t.Fatal("expected money in both class vocabularies")
	}
	if union.Size() >= spamVocab.Size()+hamVocab.Size() {
		t.Error("union size should be smaller than the sum when classes share words")
	}
}
