package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sengen [<grammar file path>]",
	Short: "Generate random sentences from a context-free grammar",
	Long: `sengen reads a context-free grammar and prints random sentences derived from it.
A grammar consists of blocks like the following, and the first block defines the start symbol:

  { <sentence> <subject> <verb> ; <subject> <verb> <object> ; }

Symbols spelled like <name> are non-terminals; anything else is a terminal.
The token \n in an alternative stands for a line break.
When the grammar file path is omitted, sengen reads a grammar from stdin.
Each sentence is followed by a line break so that the sentences -n prints stay apart.`,
	Example: `  sengen grammar.txt
  sengen -n 10 --seed 42 grammar.txt
  cat grammar.txt | sengen --tree`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
