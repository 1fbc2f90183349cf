package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/ui"
)

var contextsCmd = &cobra.Command{
	Use:     "contexts",
	Aliases: []string{"ctx"},
	Short:   "List all configured contexts",
	Long: `List all configured contexts.

The current active context is marked with an asterisk (*).

Examples:
  awsctl contexts
  awsctl ctx`,
	Args: cobra.NoArgs,
	RunE: runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	if len(contexts) == 0 {
		printAddHint(out)
		return nil
	}

	table := ui.BoxTable{
		Headers:   []string{"", "CONTEXT", "PROFILE", "REGION", "ENDPOINT"},
		Highlight: map[int]bool{},
	}
	for i, name := range config.ContextNames(contexts) {
		ctx := contexts[name]

		marker := ""
		if name == current {
			marker = "*"
			table.Highlight[i] = true
		}
		table.Rows = append(table.Rows, []string{marker, name, dash(ctx.Profile), dash(ctx.Region), dash(ctx.EndpointURL)})
	}

	fmt.Fprint(out, table.Render())
	fmt.Fprintf(out, "  %d contexts configured", len(contexts))
	if current != "" {
		fmt.Fprintf(out, ", current: %s", ui.RunningStyle.Render(current))
	}
	fmt.Fprintln(out)

	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
