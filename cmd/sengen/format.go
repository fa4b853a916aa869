package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "format [<grammar file path>]",
		Short:   "Print a grammar in the normalized form",
		Example: `  sengen format grammar.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runFormat,
	}
	rootCmd.AddCommand(cmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	return gram.Write(cmd.OutOrStdout())
}
