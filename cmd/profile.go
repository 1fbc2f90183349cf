package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	awsclient "github.com/vietdv277/awsctl/internal/aws"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the AWS profile of the current context",
	Long: `Manage the AWS profile used by the current context.

When run without subcommands, shows an interactive selector and stores the chosen
profile on the current context.

Examples:
  awsctl profile                    # Interactive profile selector
  awsctl profile ls                 # List all available profiles
  awsctl profile set my-profile     # Set a specific profile`,
	Args: cobra.NoArgs,
	RunE: runProfileInteractive,
}

var profileLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List available AWS profiles",
	Long: `List all available AWS profiles from ~/.aws/credentials and ~/.aws/config.

The profile the current target resolves to is highlighted.

Examples:
  awsctl profile ls`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <profile-name>",
	Short: "Set the AWS profile of the current context",
	Long: `Set a specific AWS profile on the current context.

Examples:
  awsctl profile set my-profile
  awsctl profile set production`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSet,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileInteractive(cmd *cobra.Command, _ []string) error {
	selected, err := pickProfile()
	if errors.Is(err, ui.ErrSelectionCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	return setContextProfile(cmd, awsclient.Profile{Name: selected.Name, Region: selected.Region})
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	profiles, err := awsclient.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(out, "No AWS profiles found")
		fmt.Fprintln(out, "Create profiles in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	active := activeProfile()

	table := ui.BoxTable{
		Headers:   []string{"", "PROFILE", "REGION", "TYPE", "SOURCE"},
		Highlight: map[int]bool{},
	}
	for i, p := range profiles {
		marker := ""
		if p.Name == active {
			marker = "*"
			table.Highlight[i] = true
		}
		kind := "static"
		if p.SSO {
			kind = "sso"
		}
		table.Rows = append(table.Rows, []string{marker, p.Name, dash(p.Region), kind, p.Source})
	}

	fmt.Fprint(out, table.Render())
	fmt.Fprintf(out, "  %d profiles found\n", len(profiles))
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	p, ok := awsclient.FindProfile(args[0])
	if !ok {
		return fmt.Errorf("profile %q not found", args[0])
	}
	return setContextProfile(cmd, p)
}

// setContextProfile stores p on the current context. The context's region is only
// replaced when it has none.
func setContextProfile(cmd *cobra.Command, p awsclient.Profile) error {
	out := cmd.OutOrStdout()

	ctx, name, err := config.GetCurrentContext()
	if err != nil {
		return fmt.Errorf("failed to load current context: %w", err)
	}
	if ctx == nil {
		fmt.Fprintln(out, "No current context. Create one for this profile with:")
		fmt.Fprintf(out, "  awsctl use add <context-name> --profile %s\n", p.Name)
		return nil
	}

	updated := *ctx
	updated.Profile = p.Name
	if updated.Region == "" {
		updated.Region = p.Region
	}
	if err := config.AddContext(name, &updated); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintf(out, "Profile set to: %s\n", ui.RunningStyle.Render(p.Name))
	fmt.Fprintf(out, "Context:        %s\n", name)
	fmt.Fprintf(out, "Saved to:       %s\n", config.GetConfigPath())
	return nil
}

// activeProfile is the profile the current target resolves to, or "" when unresolved.
func activeProfile() string {
	t, err := cli.ResolveTarget()
	if err != nil {
		return ""
	}
	return t.Profile
}
