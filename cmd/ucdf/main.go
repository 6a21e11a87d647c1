// Package main is the ucdf command line tool: parse, validate, canonicalize,
// convert and generate UCDF data source descriptors.
package main

func main() {
	Execute()
}
