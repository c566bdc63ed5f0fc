package codenamize

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrAdjectiveCount is returned when a negative adjective count is
// requested.
var ErrAdjectiveCount = errors.New("adjective count must be non-negative")

type options struct {
	adjectives    int
	maxItemChars  int
	join          string
	capitalize    bool
	hashAlgorithm string
}

// An Option adjusts how codenames are derived. Codenames are stable under a
// fixed set of options; changing adjective count, character ceiling, or
// hash algorithm yields an unrelated codename for the same object.
type Option func(*options)

// WithAdjectives sets how many adjectives precede the noun. The default is
// one. Zero is valid and yields bare nouns; negative counts are an error.
func WithAdjectives(count int) Option {
	return func(o *options) { o.adjectives = count }
}

// WithMaxItemChars caps the length of each selected word. The default of 0
// means no cap. Values 1 and 2 round up to 3, the shortest useful cap, and
// values above 9 mean no cap.
func WithMaxItemChars(chars int) Option {
	return func(o *options) { o.maxItemChars = chars }
}

// WithJoin sets the separator between words. The default is "-". An empty
// separator is valid and concatenates the words directly.
func WithJoin(separator string) Option {
	return func(o *options) { o.join = separator }
}

// WithCapitalize uppercases the first letter of each word when on.
func WithCapitalize(capitalize bool) Option {
	return func(o *options) { o.capitalize = capitalize }
}

// WithHashAlgorithm selects the hash that maps objects into the codename
// space. The default is "md5". Names are case-insensitive; see Algorithms.
func WithHashAlgorithm(name string) Option {
	return func(o *options) { o.hashAlgorithm = name }
}

func applyOptions(opts []Option) options {
	o := options{
		adjectives:    1,
		join:          "-",
		hashAlgorithm: "md5",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Codenamize maps obj to its codename, by default one adjective and one
// noun joined by a hyphen, such as "quiet-flare". The same object and
// options always produce the same codename.
func Codenamize(obj Object, opts ...Option) (string, error) {
	o := applyOptions(opts)
	words, err := selectWords(obj, o)
	if err != nil {
		return "", err
	}
	if o.capitalize {
		for i, word := range words {
			words[i] = capitalizeWord(word)
		}
	}
	return strings.Join(words, o.join), nil
}

// Particles maps obj to its codename words in reading order, adjectives
// first and the noun last, leaving joining and capitalization to the
// caller.
func Particles(obj Object, opts ...Option) ([]string, error) {
	return selectWords(obj, applyOptions(opts))
}

// SpaceSize reports how many distinct codenames the given options can
// produce. Only the adjective count and the character cap matter; join,
// capitalization, and hash algorithm options are ignored.
func SpaceSize(opts ...Option) (*big.Int, error) {
	o := applyOptions(opts)
	pools, err := wordPools(o)
	if err != nil {
		return nil, err
	}
	return poolProduct(pools), nil
}

// wordPools assembles the selection pools in decode order, nouns first and
// one adjective pool per requested adjective, each filtered to the
// character cap.
func wordPools(o options) ([][]string, error) {
	if o.adjectives < 0 {
		return nil, fmt.Errorf("%w: %d", ErrAdjectiveCount, o.adjectives)
	}
	adjectives, nouns := getLists()
	maxChars := normalizeMaxChars(o.maxItemChars)
	pools := make([][]string, 0, 1+o.adjectives)
	pools = append(pools, nouns.upTo(maxChars))
	for i := 0; i < o.adjectives; i++ {
		pools = append(pools, adjectives.upTo(maxChars))
	}
	return pools, nil
}

func poolProduct(pools [][]string) *big.Int {
	product := big.NewInt(1)
	radix := new(big.Int)
	for _, pool := range pools {
		product.Mul(product, radix.SetInt64(int64(len(pool))))
	}
	return product
}

// selectWords decodes the object's hash index as a mixed-radix number over
// the word pools, one digit per pool, then reverses the digits into
// reading order.
func selectWords(obj Object, o options) ([]string, error) {
	pools, err := wordPools(o)
	if err != nil {
		return nil, err
	}
	index, err := hashIndex(obj, o.hashAlgorithm)
	if err != nil {
		return nil, err
	}
	index.Mod(index, poolProduct(pools))
	words := make([]string, len(pools))
	radix := new(big.Int)
	digit := new(big.Int)
	for i, pool := range pools {
		radix.SetInt64(int64(len(pool)))
		index.DivMod(index, radix, digit)
		words[i] = pool[digit.Int64()]
	}
	slices.Reverse(words)
	return words, nil
}

// normalizeMaxChars snaps a requested character cap into the usable range.
// Caps shorter than the shortest word round up; zero, negative, and
// out-of-range caps mean unlimited.
func normalizeMaxChars(chars int) int {
	switch {
	case chars > 0 && chars < charFloor:
		return charFloor
	case chars < 0 || chars > charCeil:
		return 0
	}
	return chars
}

func capitalizeWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
