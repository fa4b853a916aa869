package main

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/nihei9/sengen/grammar"
	"github.com/nihei9/sengen/grammar/symbol"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe [<grammar file path>]",
		Short:   "Print a summary of a grammar in a readable format",
		Example: `  sengen describe grammar.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	return writeDescription(cmd.OutOrStdout(), gram)
}

const descriptionTemplate = `# Start Symbol

{{ .StartSymbol }}

# Non-terminals

{{ range .NonTerminals -}}
{{ printNonTerminal . }}
{{ end }}
# Productions

{{ range $i, $p := productions -}}
{{ printProduction $i $p }}
{{ end }}
# First Sets

{{ range .NonTerminals -}}
{{ printFirst . }}
{{ end }}
# Terminals

{{ range .Terminals -}}
{{ printTerminal . }}
{{ else -}}
No terminal
{{ end }}
# Unreachable Non-terminals

{{ range .Unreachable -}}
{{ . }}
{{ else -}}
No unreachable non-terminal
{{ end }}
# Unproductive Non-terminals

{{ range .Unproductive -}}
{{ . }}
{{ else -}}
No unproductive non-terminal
{{ end -}}
`

func writeDescription(w io.Writer, gram *grammar.Grammar) error {
	prods := []*grammar.Production{}
	for _, lhs := range gram.NonTerminals() {
		ps, _ := gram.Productions(lhs)
		prods = append(prods, ps...)
	}

	fst := gram.First()

	fns := template.FuncMap{
		"productions": func() []*grammar.Production {
			return prods
		},
		"printNonTerminal": func(sym symbol.Symbol) string {
			ps, _ := gram.Productions(sym)
			if len(ps) == 1 {
				return fmt.Sprintf("%v (1 alternative)", sym)
			}
			return fmt.Sprintf("%v (%v alternatives)", sym, len(ps))
		},
		"printProduction": func(i int, prod *grammar.Production) string {
			return fmt.Sprintf("%4v %v", i+1, prod)
		},
		"printFirst": func(sym symbol.Symbol) string {
			terms, empty, _ := fst.Find(sym)
			var b strings.Builder
			fmt.Fprintf(&b, "%v:", sym)
			for _, t := range terms {
				fmt.Fprintf(&b, " %v", t.Escape())
			}
			if empty {
				fmt.Fprintf(&b, " ε")
			}
			return b.String()
		},
		"printTerminal": func(sym symbol.Symbol) string {
			if sym == symbol.Newline {
				return fmt.Sprintf("%v (newline)", sym.Escape())
			}
			if strings.TrimSpace(sym.Text()) == "" {
				return fmt.Sprintf("%#v", sym.Text())
			}
			return sym.Text()
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(descriptionTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, gram)
}
