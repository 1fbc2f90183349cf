package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [context-name]",
	Short: "Set the active context",
	Long: `Set the active context for subsequent commands.

A context names an AWS profile, a region and optionally an endpoint override. Once set,
every service command runs against it unless --profile, --region, --endpoint-url or
--context say otherwise. Without a name an interactive selector is shown.

Examples:
  awsctl use                 # Pick a context interactively
  awsctl use prod            # Switch to the prod context`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeContexts,
	RunE:              runUse,
}

var useAddCmd = &cobra.Command{
	Use:   "add <context-name>",
	Short: "Add a new context",
	Long: `Add a new context configuration.

Without --profile or --endpoint-url an interactive selector lists the profiles found in
the shared AWS config and credentials files.

Examples:
  awsctl use add prod --profile prod-sso --region eu-west-1
  awsctl use add local --region us-east-1 --endpoint-url http://localhost:4566`,
	Args: cobra.ExactArgs(1),
	RunE: runUseAdd,
}

var useDeleteCmd = &cobra.Command{
	Use:   "delete <context-name>",
	Short: "Delete a context",
	Long: `Delete a context configuration.

Examples:
  awsctl use delete old-env`,
	Args:              cobra.ExactArgs(1),
	Aliases:           []string{"rm", "remove"},
	ValidArgsFunction: completeContexts,
	RunE:              runUseDelete,
}

// selectContext and selectProfile are the interactive pickers; tests replace them.
var (
	selectContext = ui.SelectContext
	selectProfile = ui.SelectProfile
)

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useAddCmd)
	useCmd.AddCommand(useDeleteCmd)

	// Flags for use add
	useAddCmd.Flags().String("profile", "", "AWS profile name")
	useAddCmd.Flags().String("region", "", "AWS region")
	useAddCmd.Flags().String("endpoint-url", "", "service endpoint override, e.g. a local emulator")
}

func runUse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	var contextName string
	if len(args) == 1 {
		contextName = args[0]
	} else {
		contextName, err = selectContext(contexts, current)
		if errors.Is(err, ui.ErrSelectionCancelled) {
			return nil
		}
		if errors.Is(err, config.ErrNoContexts) {
			printAddHint(out)
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := config.SetCurrentContext(contextName); err != nil {
		if errors.Is(err, config.ErrContextNotFound) || errors.Is(err, config.ErrNoContexts) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Context %q not found.\n\n", contextName)
			if len(contexts) == 0 {
				printAddHint(cmd.ErrOrStderr())
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Available contexts:")
				for _, name := range config.ContextNames(contexts) {
					marker := "  "
					if name == current {
						marker = "* "
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s%s\n", marker, name)
				}
			}
		}
		return err
	}

	ctx := contexts[contextName]
	fmt.Fprintf(out, "Switched to context: %s\n", ui.RunningStyle.Render(contextName))
	if ctx.Profile != "" {
		fmt.Fprintf(out, "  Profile:  %s\n", ctx.Profile)
	}
	if ctx.Region != "" {
		fmt.Fprintf(out, "  Region:   %s\n", ctx.Region)
	}
	if ctx.EndpointURL != "" {
		fmt.Fprintf(out, "  Endpoint: %s\n", ctx.EndpointURL)
	}

	return nil
}

func runUseAdd(cmd *cobra.Command, args []string) error {
	contextName := args[0]

	profile, _ := cmd.Flags().GetString("profile")
	region, _ := cmd.Flags().GetString("region")
	endpoint, _ := cmd.Flags().GetString("endpoint-url")

	switch {
	case profile != "":
		p, ok := awsclient.FindProfile(profile)
		if !ok {
			return fmt.Errorf("profile %q not found in the shared AWS config or credentials files", profile)
		}
		if region == "" {
			region = p.Region
		}

	case endpoint == "":
		picked, err := pickProfile()
		if errors.Is(err, ui.ErrSelectionCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		profile = picked.Name
		if region == "" {
			region = picked.Region
		}
	}

	ctx := &config.Context{
		Profile:     profile,
		Region:      region,
		EndpointURL: endpoint,
	}
	if err := config.AddContext(contextName, ctx); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Context added: %s\n", contextName)
	fmt.Fprintln(out, "\nTo use this context:")
	fmt.Fprintf(out, "  awsctl use %s\n", contextName)

	return nil
}

func pickProfile() (*ui.ProfileEntry, error) {
	profiles, err := awsclient.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, errors.New("no AWS profiles found; create one in ~/.aws/config or pass --profile / --endpoint-url")
	}

	entries := make([]ui.ProfileEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = ui.ProfileEntry{Name: p.Name, Region: p.Region, SSO: p.SSO}
	}
	return selectProfile(entries, "")
}

func runUseDelete(cmd *cobra.Command, args []string) error {
	contextName := args[0]

	if err := config.DeleteContext(contextName); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Context deleted: %s\n", contextName)
	return nil
}

func printAddHint(w io.Writer) {
	fmt.Fprintln(w, "No contexts configured. Add one with:")
	fmt.Fprintln(w, "  awsctl use add prod --profile <profile> --region <region>")
}
