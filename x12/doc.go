// Package x12 holds the in-memory model of a flat, delimiter-separated EDI
// X12 document: Fields, Segments, Loops, and the Transaction that owns them.
//
// # Tokenizing
//
// A Transaction is built from raw text. Each line becomes one Segment; the
// first token of the line is the Segment name, the rest are its Fields:
//
//	ST*944*0001
//	W07*10*CA**VN*100000154
//
// Empty lines and malformed tokens are kept as they are. Nothing in the
// tokenizer fails.
//
// # Loops
//
// A Loop is an ordered list of Matchers. The first Matcher is the anchor.
// Running a Loop scans the Transaction from the first anchor match and groups
// every run of member Segments into one entry of Loop.Contents. Unrelated
// Segments in between are ignored, and a trailing partial group is dropped.
//
// Loops are looked up by position, and the position is the index at which the
// Loop was registered with AddLoop. Register Loops in ascending position order.
package x12
