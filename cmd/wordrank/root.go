package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wordrank.
// The root command itself performs the ranking.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordrank <file>",
		Short: "List the words of a text file from most to least frequent",
		Long: `wordrank reads a text file, splits it into lowercase words and prints
them ordered from most to least frequent. Words with the same count are
listed alphabetically.

Lines made only of digits and symbols are ignored. Every character that is
not a letter, digit or underscore separates words.

Examples:
  # List all words, most frequent first
  wordrank book.txt

  # Show counts next to the 20 most frequent words
  wordrank book.txt --format counts --top 20

  # Leave out stop words (one word per line, matched exactly)
  wordrank book.txt --filter stopwords.txt

  # Read a Latin-1 encoded file and write a Markdown report
  wordrank old.txt -e latin1 -F markdown -o report.md`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRankCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	addRankFlags(cmd)

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
