package codenamize

import (
	_ "embed"
	"sort"
	"strings"
	"sync"
)

const (
	// charFloor is the smallest usable character ceiling; requested ceilings
	// below it clamp up to it.
	charFloor = 3
	// charCeil is the largest indexed character ceiling; requested ceilings
	// above it mean "no limit".
	charCeil = 9
)

// The word pools feeding codename selection. The files keep their authoring
// order; selection operates on a stable length-sorted view built once at
// first use. Order and content are load-bearing: inserting, removing, or
// reordering a single word remaps existing codenames.
var (
	//go:embed adjectives.txt
	adjectiveData string
	//go:embed nouns.txt
	nounData string

	listsOnce     sync.Once
	adjectiveList wordList
	nounList      wordList
)

// wordList is an immutable pool sorted ascending by word length, with
// precomputed prefix counts per character ceiling.
type wordList struct {
	words []string
	// counts[c] is how many words are at most c characters long, for
	// c in [charFloor, charCeil].
	counts map[int]int
}

// upTo returns the words no longer than maxChars. A ceiling of 0 means the
// whole pool. maxChars must already be normalized.
func (l wordList) upTo(maxChars int) []string {
	if maxChars == 0 {
		return l.words
	}
	return l.words[:l.counts[maxChars]]
}

func getLists() (adjectives, nouns wordList) {
	listsOnce.Do(func() {
		adjectiveList = newWordList(adjectiveData)
		nounList = newWordList(nounData)
	})
	return adjectiveList, nounList
}

func newWordList(data string) wordList {
	words := parseWordList(data)
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) < len(words[j])
	})
	counts := make(map[int]int, charCeil-charFloor+1)
	for c := charFloor; c <= charCeil; c++ {
		counts[c] = sort.Search(len(words), func(i int) bool {
			return len(words[i]) > c
		})
	}
	return wordList{words: words, counts: counts}
}

func parseWordList(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
