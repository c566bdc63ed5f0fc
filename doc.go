// Package codenamize deterministically maps identifiers to memorable
// codenames such as "pitted-briar".
//
// A codename is a short run of adjectives ending in a noun, drawn from
// fixed word lists by hashing the identifier. The mapping is pure: the
// same object and options always yield the same codename, in any process
// on any platform, with no stored state. Codenames compress a large
// identifier space into a small readable one, so collisions are expected;
// they label things for humans rather than identify them uniquely.
//
//	name, _ := codenamize.Codenamize(codenamize.String("11:22:33:44:55:66"))
//	// name == "pitted-briar"
//
// More adjectives multiply the space, and a character cap keeps the words
// short:
//
//	name, _ = codenamize.Codenamize(codenamize.String("11:22:33:44:55:66"),
//		codenamize.WithAdjectives(2))
//	// name == "opening-pitted-briar"
//
// SpaceSize reports how many distinct codenames a configuration can
// produce, which bounds how many objects it can label before collisions
// dominate:
//
//	adjectives  max 5 chars  unlimited
//	         0          390        554
//	         1        27690     355668
//	         2      1965990  228338856
package codenamize
