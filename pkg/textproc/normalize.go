package textproc

import (
	"strings"
)

// asciiPunctuation is the fixed set of punctuation characters stripped
// during normalization. Deliberately ASCII-only: non-ASCII artifacts are
// handled by the separate artifact table below.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// encodingArtifacts are smart-quote and similar non-ASCII characters that
// upstream encodings commonly leave in SMS dumps. Stripped after regular
// punctuation.
var encodingArtifacts = []rune{
	'‘', // left single quote
	'’', // right single quote
	'“', // left double quote
	'”', // right double quote
	'–', // en dash
	'—', // em dash
	'…', // ellipsis
	'\u00a0', // non-breaking space artifact
	'£', // pound sign (frequent in UK SMS spam)
	'�', // replacement character
}

// Normalize lowercases text and strips punctuation, encoding artifacts and
// digits, collapsing all whitespace runs to single spaces. The transform is
// pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = collapseWhitespace(text)
	text = stripRunes(text, isASCIIPunct)
	text = stripRunes(text, isEncodingArtifact)
	text = stripRunes(text, isDigit)
	// Removals can leave doubled or trailing spaces behind.
	return collapseWhitespace(text)
}

// Tokenize splits normalized text into tokens on single spaces. Empty
// tokens are dropped so callers never see artifacts of stray separators.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	parts := strings.Split(text, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}

	return tokens
}

// NormalizeAndTokenize is the composition every pipeline stage uses.
func NormalizeAndTokenize(text string) []string {
	return Tokenize(Normalize(text))
}

// collapseWhitespace replaces runs of whitespace (spaces, tabs, newlines)
// with single spaces and trims the ends.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func stripRunes(text string, drop func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if drop(r) {
			return -1
		}
		return r
	}, text)
}

func isASCIIPunct(r rune) bool {
	return r < 128 && strings.ContainsRune(asciiPunctuation, r)
}

func isEncodingArtifact(r rune) bool {
	for _, a := range encodingArtifacts {
		if r == a {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
