package cli

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names shared by every operation command.
const (
	FlagSelect     = "select"
	FlagNextToken  = "next-token"
	FlagMaxResults = "max-results"
	FlagNoPaginate = "no-paginate"
	FlagForce      = "force"
	FlagTags       = "tags"
)

// AddSelectFlag adds --select to cmd.
func AddSelectFlag(cmd *cobra.Command) {
	cmd.Flags().String(FlagSelect, "",
		"output selection: empty for the default, '*' for the whole response, '^Param' to echo a parameter, or a response field path")
}

// AddPagingFlags adds the continuation flags of list commands.
func AddPagingFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagNextToken, "", "start from this continuation token and fetch a single page")
	cmd.Flags().Int32(FlagMaxResults, 0, "maximum number of results per page")
	cmd.Flags().Bool(FlagNoPaginate, false, "fetch a single page even when more results exist")
}

// AddForceFlag adds --force to destructive commands.
func AddForceFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP(FlagForce, "f", false, "skip confirmation prompt")
}

// AddTagsFlag adds a key=value map flag.
func AddTagsFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringToString(FlagTags, nil, usage)
}

// String returns the value of a string flag, or nil when it was not set.
func String(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return aws.String(v)
}

// Int32 returns the value of an int32 flag, or nil when it was not set.
func Int32(cmd *cobra.Command, name string) *int32 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt32(name)
	return aws.Int32(v)
}

// Bool returns the value of a bool flag, or nil when it was not set.
func Bool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return aws.Bool(v)
}

// Strings returns the values of a string slice flag, or nil when it was not set.
func Strings(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}

// StringMap returns the values of a key=value flag, or nil when it was not set.
func StringMap(cmd *cobra.Command, name string) map[string]string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetStringToString(name)
	return v
}

// Identifier returns the primary identifier, given either as the positional argument or as
// the named flag. Giving both with different values is an error.
func Identifier(cmd *cobra.Command, args []string, name string) (*string, error) {
	flag := String(cmd, name)
	if len(args) == 0 {
		return flag, nil
	}
	if flag != nil && *flag != args[0] {
		return nil, fmt.Errorf("conflicting values for --%s: %q and %q", name, *flag, args[0])
	}
	return aws.String(args[0]), nil
}

// enum is satisfied by the SDK's string enum types.
type enum[T any] interface {
	~string
	Values() []T
}

var _ pflag.Value = (*enumValue)(nil)

type enumValue struct {
	value   string
	allowed []string
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Type() string { return "string" }

func (e *enumValue) Set(s string) error {
	for _, a := range e.allowed {
		if strings.EqualFold(a, s) {
			e.value = a
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

// AddEnumFlag adds a flag restricted to the values of the SDK enum T, with shell completion.
func AddEnumFlag[T enum[T]](cmd *cobra.Command, name, usage string) {
	var zero T
	allowed := make([]string, 0, len(zero.Values()))
	for _, v := range zero.Values() {
		allowed = append(allowed, string(v))
	}

	cmd.Flags().Var(&enumValue{allowed: allowed}, name, fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, "|")))
	_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(allowed, cobra.ShellCompDirectiveNoFileComp))
}

// Enum returns the value of an enum flag added with AddEnumFlag. Unset flags give "".
func Enum[T enum[T]](cmd *cobra.Command, name string) T {
	f := changedFlag(cmd.Flags(), name)
	if f == nil {
		return ""
	}
	return T(f.Value.String())
}

// changedFlag returns the named flag when it exists and was set on the command line.
func changedFlag(fs *pflag.FlagSet, name string) *pflag.Flag {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	return f
}
