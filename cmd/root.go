package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vietdv277/awsctl/cmd/codestar"
	"github.com/vietdv277/awsctl/cmd/drs"
	"github.com/vietdv277/awsctl/internal/cli"
	"github.com/vietdv277/awsctl/internal/config"
	"github.com/vietdv277/awsctl/internal/output"
)

var rootCmd = &cobra.Command{
	Use:   "awsctl",
	Short: "awsctl - command-line access to AWS CodeStar Connections and Elastic Disaster Recovery",
	Long: `awsctl wraps the AWS CodeStar Connections and Elastic Disaster Recovery APIs as
shell commands. List commands follow continuation tokens and stream every page; results
are printed as a table, JSON or YAML.

Context-Aware Commands:
  awsctl use prod                 # Switch to the prod context
  awsctl status                   # Show current context and auth status
  awsctl contexts                 # List all configured contexts

Service Commands:
  awsctl codestar list-connections
  awsctl drs describe-source-servers -o json
  awsctl drs describe-jobs --select ^MaxResults --max-results 10

Output Formats (--output):
  table          one table spanning every page
  json, yaml     one document per emitted value; a paged listing prints one document
                 per page, e.g. "awsctl drs describe-jobs -o json | jq -s add"

Output Selection (--select):
  (empty)        the command's default field
  *              the whole response
  ^Param         echo a request parameter
  Field.Path     any field of the response`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.FormatError(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Global persistent flags (available to all subcommands)
	flags.StringP(cli.KeyProfile, "p", "", "AWS profile to use")
	flags.StringP(cli.KeyRegion, "r", "", "AWS region to use")
	flags.String(cli.KeyEndpointURL, "", "override the service endpoint URL")
	flags.StringP(cli.KeyContext, "c", "", "context to use instead of the current one")
	flags.StringP(cli.KeyOutput, "o", "", fmt.Sprintf("output format (%s); json and yaml print one document per page", strings.Join(output.Formats(), "|")))
	flags.String(cli.KeyLogLevel, "", "log level (debug|info|warn|error)")
	flags.String(cli.KeyLogFormat, "", "log format (text|json)")
	flags.String(cli.KeyConfig, "", "config file (default $XDG_CONFIG_HOME/awsctl/config.yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc(cli.KeyOutput,
		cobra.FixedCompletions(output.Formats(), cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc(cli.KeyContext, completeContexts)

	// Bind flags to viper
	for _, key := range []string{
		cli.KeyProfile, cli.KeyRegion, cli.KeyEndpointURL, cli.KeyContext,
		cli.KeyOutput, cli.KeyLogLevel, cli.KeyLogFormat, cli.KeyConfig,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(codestar.Cmd)
	rootCmd.AddCommand(drs.Cmd)
}

func initConfig() error {
	// A .env file in the working directory may carry AWSCTL_* and AWS_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Read from environment variables
	viper.SetEnvPrefix("AWSCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	config.SetPath(viper.GetString(cli.KeyConfig))
	return nil
}

func completeContexts(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	contexts, _, err := config.ListContexts()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return config.ContextNames(contexts), cobra.ShellCompDirectiveNoFileComp
}
