// Package diagnostic collects errors, warnings and notes produced while
// resolving destination members.
//
// Key capabilities:
//   - Missing type declarations reported as errors
//   - Unsupported declarations and dropped union members reported as warnings
//   - The resolved type and filter of each member recorded as info
package diagnostic
