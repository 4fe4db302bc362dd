package corpus

import (
	"fmt"
	"testing"
)

func makeMessages(n int) []Message {
	messages := make([]Message, n)
	for i := range messages {
		label := Ham
		if i%5 == 0 {
			label = Spam
		}
		messages[i] = Message{Label: label, Text: fmt.Sprintf("message number %d", i)}
	}
	return messages
}

func TestPartitionProportions(t *testing.T) {
	messages := makeMessages(100)

	split, err := Partition(messages, DefaultSplitRatios(), 42)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	if len(split.Training) != 80 {
		t.Errorf("training split = %d, expected 80", len(split.Training))
	}
	if len(split.Validation) != 10 {
		t.Errorf("validation split = %d, expected 10", len(split.Validation))
	}
	if len(split.Test) != 10 {
		t.Errorf("test split = %d, expected 10", len(split.Test))
	}

	total := len(split.Training) + len(split.Validation) + len(split.Test)
	if total != len(messages) {
		t.Errorf("splits cover %d messages, expected %d", total, len(messages))
	}
}

func TestPartitionDisjoint(t *testing.T) {
	messages := makeMessages(50)

	split, err := Partition(messages, DefaultSplitRatios(), 7)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	seen := make(map[string]int)
	for _, m := range split.Training {
		seen[m.Text]++
	}
	for _, m := range split.Validation {
		seen[m.Text]++
	}
	for _, m := range split.Test {
		seen[m.Text]++
	}

	if len(seen) != len(messages) {
		t.Errorf("splits contain %d distinct messages, expected %d", len(seen), len(messages))
	}
	for text, count := range seen {
		if count != 1 {
			t.Errorf("message %q appears %d times across splits", text, count)
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	messages := makeMessages(40)

	first, err := Partition(messages, DefaultSplitRatios(), 99)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	second, err := Partition(messages, DefaultSplitRatios(), 99)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	for i := range first.Training {
		if first.Training[i] != second.Training[i] {
			t.Fatalf("same seed produced different training order at index %d", i)
		}
	}
}

func TestPartitionInputUntouched(t *testing.T) {
	messages := makeMessages(30)
	original := make([]Message, len(messages))
	copy(original, messages)

	if _, err := Partition(messages, DefaultSplitRatios(), 3); err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	for i := range messages {
		if messages[i] != original[i] {
			t.Fatal("Partition modified its input slice")
		}
	}
}

func TestPartitionErrors(t *testing.T) {
	if _, err := Partition(nil, DefaultSplitRatios(), 1); err == nil {
		t.Error("expected error for empty corpus")
	}

	bad := SplitRatios{Train: 0.5, Validation: 0.1, Test: 0.1}
	if _, err := Partition(makeMessages(10), bad, 1); err == nil {
		t.Error("expected error for ratios not summing to 1")
	}

	if _, err := Partition(makeMessages(10), SplitRatios{Train: 0, Validation: 0.5, Test: 0.5}, 1); err == nil {
		t.Error("expected error for zero train ratio")
	}
}
