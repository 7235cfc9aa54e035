// Package formula extracts chemical formula mentions from free text.
//
// The extractor is a small deterministic grammar over the periodic table,
// not a chemistry parser: a token is accepted when every letter run maps to
// a known element symbol, parentheses balance, and the token carries enough
// structure (more than one element, or an element with a count) to rule out
// ordinary words. Hydrate dots and trailing charges are normalized before
// matching so "CuSO4.5H2O" and "CuSO4·5H2O" extract identically.
//
//	ext := formula.NewExtractor()
//	ext.Extract("Dissolve CuSO4·5H2O in NaOH solution")
//	// ["CuSO4·5H2O", "NaOH"]
package formula
