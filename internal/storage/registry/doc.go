// Package registry holds the in-memory snapshot of the token table.
//
// A Registry is loaded once from a delimited text table whose first row is a
// header. Column 3 (0-based) holds the encoded token and column 4 the owner;
// all other columns are kept but never interpreted. Rows with fewer than five
// fields are skipped.
//
// The snapshot is immutable after Load and answers two queries by linear scan
// in file order:
//
//   - FindUserByToken: owner of the first row whose token matches
//   - FindTokensByUser: tokens of every row whose owner matches
//
// Both comparisons ignore case. There is no index and no refresh; a Registry
// is safe for concurrent readers.
package registry
