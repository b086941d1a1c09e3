// Package match suggests close names for misspelled type declarations.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate name, if any is close enough
package match
