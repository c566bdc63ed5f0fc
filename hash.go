package codenamize

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned when a hash algorithm name is not in the
// registry. Use Algorithms for the known names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// legacyMultiplier is folded into every digest before reduction into the
// codename space. It serves no mixing purpose, but dropping it would remap
// every codename ever issued.
//
// TODO: remove the multiplier at the next compatibility break.
var legacyMultiplier, _ = new(big.Int).SetString("36413321723440003717", 10)

// hashConstructors maps algorithm names to constructors. Names use lowercase
// with underscores (sha3_256, sha512_224) and are matched case-insensitively,
// so they survive flags and config files verbatim.
var hashConstructors = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   sha3.New224,
	"sha3_256":   sha3.New256,
	"sha3_384":   sha3.New384,
	"sha3_512":   sha3.New512,
	"blake2b": func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	},
	"blake2s": func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	},
}

// Algorithms returns the names of the supported hash algorithms, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(hashConstructors))
	for name := range hashConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newHash(algorithm string) (hash.Hash, error) {
	constructor, ok := hashConstructors[strings.ToLower(algorithm)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
	return constructor(), nil
}

// hashIndex digests the object and maps the digest to a non-negative index,
// treating the digest bytes as one big-endian unsigned integer.
func hashIndex(obj Object, algorithm string) (*big.Int, error) {
	h, err := newHash(algorithm)
	if err != nil {
		return nil, err
	}
	h.Write(obj.data)
	index := new(big.Int).SetBytes(h.Sum(nil))
	return index.Mul(index, legacyMultiplier), nil
}
