// Package convert routes a document from one format to another through the
// IR.
//
// Formats are chosen from file suffixes (see package format) unless given
// explicitly. A conversion reads the whole input, parses it, encodes the
// result in memory and only then replaces the output file, so a failed
// conversion never leaves a partial output behind.
package convert
