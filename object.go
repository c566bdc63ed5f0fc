package codenamize

import "strconv"

// An Object is a value to be codenamed. Construct one with String, Bytes,
// Int, or Uint; the zero Object is equivalent to String("").
//
// Numbers hash identically to their decimal string form, so Int(100001) and
// String("100001") share a codename.
type Object struct {
	data []byte
}

// String codenames the UTF-8 bytes of s.
func String(s string) Object {
	return Object{data: []byte(s)}
}

// Bytes codenames b as-is.
func Bytes(b []byte) Object {
	return Object{data: b}
}

// Int codenames the decimal representation of n.
func Int(n int64) Object {
	return Object{data: strconv.AppendInt(nil, n, 10)}
}

// Uint codenames the decimal representation of n.
func Uint(n uint64) Object {
	return Object{data: strconv.AppendUint(nil, n, 10)}
}
