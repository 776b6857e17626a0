// Package rnokpp validates and generates Ukrainian individual taxpayer
// identifiers (RNOKPP).
//
// # Format
//
// An identifier is exactly 10 ASCII digits:
//
//	[0-4] day offset from the epoch 1899-12-31 (date of birth)
//	[5-7] filler
//	[8]   sex: odd for male, even for female
//	[9]   check digit over positions 0-8
//
// The check digit is the weighted sum of the first nine digits with the
// weights -1, 5, 7, 9, 4, 6, 10, 5, 7, reduced modulo 11; a remainder of
// 10 folds to 0.
//
// A checksum mismatch is not an error: Analyze reports it through
// Analysis.IsValid. Only structural problems (length, non-digits) and
// dates that cannot be encoded are errors.
//
// Usage
//
//	a, err := rnokpp.Analyze("3013753534")
//	fmt.Println(a.IsValid, a.Sex, a.DOB())
//
//	id, err := rnokpp.Generate(rnokpp.Params{Sex: rnokpp.Female})
//
//	v, err := rnokpp.New("3013753530")
//	fmt.Println(v) // 3013753530 RNOKPP
package rnokpp
