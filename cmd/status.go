package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current context and authentication status",
	Long: `Display the resolved target (context, profile, region and endpoint) and verify that
its credentials work by calling STS GetCallerIdentity.

Examples:
  awsctl status
  awsctl status --context staging`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

// identityClient returns the STS client status checks against; tests replace it.
var identityClient = func(ctx context.Context) (awsclient.STSAPI, error) {
	c, err := cli.NewAWSClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.STS, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	target, err := cli.ResolveTarget()
	if err != nil {
		return fmt.Errorf("failed to resolve target: %w", err)
	}

	fmt.Fprintln(out, "Current Status")
	fmt.Fprintln(out, ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Fprintln(out)

	if target.Context == "" {
		fmt.Fprintln(out, "Context:  "+ui.MutedStyle.Render("(not set)"))
	} else {
		fmt.Fprintf(out, "Context:  %s\n", ui.HeaderStyle.Render(target.Context))
	}
	fmt.Fprintf(out, "Profile:  %s\n", ui.AWSStyle.Render(orDefault(target.Profile, "(sdk default)")))
	fmt.Fprintf(out, "Region:   %s\n", orDefault(target.Region, "(sdk default)"))
	if target.EndpointURL != "" {
		fmt.Fprintf(out, "Endpoint: %s\n", target.EndpointURL)
	}
	fmt.Fprintln(out)

	displayAuthStatus(cmd.Context(), out, target)
	return nil
}

func displayAuthStatus(ctx context.Context, out io.Writer, target cli.Target) {
	fmt.Fprint(out, "Auth:     ")

	client, err := identityClient(ctx)
	var identity *awsclient.CallerIdentity
	if err == nil {
		identity, err = awsclient.GetCallerIdentity(ctx, client)
	}

	if err != nil {
		fmt.Fprintln(out, ui.StoppedStyle.Render("✗ Not authenticated"))
		fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(cli.FormatError(err)))

		if p, ok := awsclient.FindProfile(target.Profile); ok && p.SSO {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "To authenticate:")
			fmt.Fprintf(out, "  aws sso login --profile %s\n", p.Name)
		}
		return
	}

	fmt.Fprintln(out, ui.RunningStyle.Render("✓ Authenticated"))
	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return ui.MutedStyle.Render(def)
	}
	return s
}
