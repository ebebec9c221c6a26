// Package main provides the CLI entrypoint for x12map.
//
// x12map converts X12 EDI documents to nested JSON or YAML data and back,
// driven by a declarative mapping spec file:
//   - segments, type and loops inspect a document
//   - extract maps a document to data
//   - generate maps data back to a document
//   - spec validates and normalizes spec files
package main

import "x12map/cmd/x12map/cmd"

func main() {
	cmd.Execute()
}
