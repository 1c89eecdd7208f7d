// Package prefix provides the manufacturer prefix table used to generate
// plausible random VINs.
//
// Each table line holds an 8 character prefix (world manufacturer identifier
// plus vehicle descriptor section) and a 1 character model year code,
// separated by whitespace:
//
//	1G1ZD5ST   J
//
// Blank lines and lines starting with '#' are ignored. [Default] returns the
// table embedded in the binary; it is parsed once and shared read-only.
package prefix
