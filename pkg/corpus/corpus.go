package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Label is the class of a message.
type Label string

const (
	Spam Label = "spam"
	Ham  Label = "ham"
)

// ParseLabel validates a raw label field.
func ParseLabel(s string) (Label, error) {
	switch Label(strings.ToLower(strings.TrimSpace(s))) {
	case Spam:
		return Spam, nil
	case Ham:
		return Ham, nil
	default:
		return "", fmt.Errorf("unknown label %q (want %q or %q)", s, Spam, Ham)
	}
}

// Message is one labeled corpus record. Immutable once ingested.
type Message struct {
	Label Label
	Text  string
}

// Load reads a tab-delimited corpus (label<TAB>text per line, the SMS Spam
// Collection layout) from r. Blank lines are skipped; a record missing its
// label or text is a hard error, not silently dropped.
func Load(r io.Reader) ([]Message, error) {
	var messages []Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rawLabel, text, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("line %d: malformed record, missing tab separator", lineNo)
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("line %d: malformed record, empty text", lineNo)
		}

		label, err := ParseLabel(rawLabel)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}

		messages = append(messages, Message{Label: label, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %v", err)
	}

	return messages, nil
}

// LoadFile reads a tab-delimited corpus from disk.
func LoadFile(path string) ([]Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %v", err)
	}
	defer file.Close()

	messages, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return messages, nil
}

// ByLabel partitions messages into spam and ham collections, preserving
// input order within each class.
func ByLabel(messages []Message) (spam, ham []Message) {
	for _, m := range messages {
		if m.Label == Spam {
			spam = append(spam, m)
		} else {
			ham = append(ham, m)
		}
	}
	return spam, ham
}

// Texts extracts the raw text field of every message.
func Texts(messages []Message) []string {
	texts := make([]string, len(messages))
	for i, m := range messages {
		texts[i] = m.Text
	}
	return texts
}
