package compare

import "strings"

// punctuationCutset matches the ASCII punctuation set stripped from word
// boundaries when IgnorePunctuation is active. Interior punctuation, such as
// apostrophes in contractions, is preserved.
const punctuationCutset = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Token is a whitespace-delimited unit of text. Original is the exact
// substring from the input, used for display. Normalized is the comparison
// key derived via CompareOptions, used only for equality during alignment.
type Token struct {
	Original   string
	Normalized string
}

// Tokenize splits text on runs of Unicode whitespace and derives the
// normalized key for each resulting token.
func Tokenize(text string, opts CompareOptions) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Token{Original: f, Normalized: Normalize(f, opts)})
	}
	return tokens
}

// Normalize derives the comparison key for a single word. Case folding
// applies first, then boundary punctuation stripping.
func Normalize(word string, opts CompareOptions) string {
	if opts.IgnoreCase {
		word = strings.ToLower(word)
	}
	if opts.IgnorePunctuation {
		word = strings.Trim(word, punctuationCutset)
	}
	return word
}

// tokenSequences returns parallel slices of original words and normalized
// keys. When IgnorePunctuation is active, tokens whose normalized form is
// empty (punctuation-only tokens) are dropped from both slices so index
// correspondence is preserved.
func tokenSequences(text string, opts CompareOptions) (words []string, keys []string) {
	tokens := Tokenize(text, opts)
	words = make([]string, 0, len(tokens))
	keys = make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if opts.IgnorePunctuation && tok.Normalized == "" {
			continue
		}
		words = append(words, tok.Original)
		keys = append(keys, tok.Normalized)
	}
	return words, keys
}
