package learning

import (
	"github.com/zpam/sms-filter/pkg/textproc"
)

// Vocabulary is the set of distinct tokens observed in a message
// collection. Built once per training run, read-only afterwards.
type Vocabulary map[string]struct{}

// BuildVocabulary tokenizes every raw message and unions the tokens.
func BuildVocabulary(messages []string) Vocabulary {
	vocab := make(Vocabulary)
	for _, msg := range messages {
		for _, token := range textproc.NormalizeAndTokenize(msg) {
			vocab[token] = struct{}{}
		}
	}
	return vocab
}

// Contains reports token membership.
func (v Vocabulary) Contains(token string) bool {
	_, ok := v[token]
	return ok
}

// Size returns the number of distinct tokens.
func (v Vocabulary) Size() int {
	return len(v)
}

// Union returns a new vocabulary containing every token of v and other.
func (v Vocabulary) Union(other Vocabulary) Vocabulary {
	merged := make(Vocabulary, len(v)+len(other))
	for token := range v {
		merged[token] = struct{}{}
	}
	for token := range other {
		merged[token] = struct{}{}
	}
	return merged
}
