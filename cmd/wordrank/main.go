// Package main provides the entry point for the wordrank CLI.
//
// wordrank reads a text file, counts how often each word occurs and prints
// the words from most to least frequent, optionally leaving out the words
// listed in a filter file.
//
// Usage:
//
//	wordrank <file>
//	wordrank <file> --filter stopwords.txt
//
// See --help for all available options.
package main

// main is the entry point for wordrank.
func main() {
	Execute()
}
