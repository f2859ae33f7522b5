/*
Package text turns pieces of text into feature vectors.

Every word of a text becomes a feature whose value is the probability
of finding that word in the text: the number of times it appears
divided by the number of words in the text.
*/
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/reiver/go-porterstemmer"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
Options configures how a Vectorizer extracts words from a text.

Lowercase makes words that only differ in case the same feature.

Stopwords, when not empty, is the ISO 639-1 code of the language whose
stop words are removed from the text. Removing stop words also
lowercases the text.

Stem replaces every word with its Porter stem.

Words shorter than MinLength runes are ignored.
*/
type Options struct {
	Lowercase bool   `yaml:"lowercase"`
	Stopwords string `yaml:"stopwords"`
	Stem      bool   `yaml:"stem"`
	MinLength int    `yaml:"min_length"`
}

// DefaultOptions are the options used when no metadata is given.
var DefaultOptions = Options{Lowercase: true}

// Vectorizer turns texts into feature vectors.
type Vectorizer struct {
	options Options
}

// NewVectorizer returns a Vectorizer with the given options.
func NewVectorizer(o Options) *Vectorizer {
	return &Vectorizer{o}
}

// Options returns the options of the vectorizer.
func (v *Vectorizer) Options() Options {
	return v.options
}

/*
Words takes a text and returns its words in order, after applying the
options of the vectorizer.
*/
func (v *Vectorizer) Words(s string) ([]string, error) {
	if v.options.Stopwords != "" {
		s = stopwords.CleanString(s, v.options.Stopwords, false)
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(s,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, errors.Wrap(err, "tokenizing text")
	}
	var words []string
	for _, tok := range doc.Tokens() {
		w := tok.Text
		if !isWord(w) {
			continue
		}
		if v.options.Lowercase {
			w = strings.ToLower(w)
		}
		if v.options.Stem {
			w = porterstemmer.StemString(w)
		}
		if utf8.RuneCountInString(w) < v.options.MinLength || w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}

/*
Vectorize takes a text and returns a feature vector with a feature per
distinct word in the order in which they first appear in the text.
The value of each feature is the number of occurrences of the word
divided by the total number of words. A text without words results in
an empty vector.
*/
func (v *Vectorizer) Vectorize(s string) (feature.Vector, error) {
	words, err := v.Words(s)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	probs := make([]feature.Probability, 0, len(order))
	total := float64(len(words))
	for _, w := range order {
		probs = append(probs, feature.Probability{Name: w, Value: float64(counts[w]) / total})
	}
	return feature.New(probs...), nil
}

func isWord(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
