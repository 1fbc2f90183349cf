package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/spf13/cobra"
	"github.com/vietdv277/awsctl/internal/operation"
	"github.com/vietdv277/awsctl/internal/output"
)

// Run builds the invocation for in from the command's --select and paging flags, issues op
// against client and streams the projected results to the command's output.
func Run[C, In, Out any](cmd *cobra.Command, op operation.Operation[C, In, Out], client C, in *In) error {
	opts := operation.Options{Logger: NewLogger(cmd.ErrOrStderr())}
	opts.Select, _ = cmd.Flags().GetString(FlagSelect)
	opts.NoPaginate, _ = cmd.Flags().GetBool(FlagNoPaginate)
	// an empty token is the same as no token
	if token := String(cmd, FlagNextToken); operation.HasMore(token) {
		opts.NextToken = token
	}

	inv, err := op.Build(in, opts)
	if err != nil {
		return err
	}

	em, err := output.New(cmd.OutOrStdout(), OutputFormat())
	if err != nil {
		return err
	}

	invokeErr := op.Invoke(cmd.Context(), client, inv, em.Emit)
	// pages emitted before a failure are still rendered
	if err := em.Flush(); err != nil && invokeErr == nil {
		return err
	}
	return invokeErr
}

// Confirm asks before a destructive action unless --force is set. It reads the answer from
// the command's input and reports whether to proceed.
func Confirm(cmd *cobra.Command, action, target string) bool {
	if force, _ := cmd.Flags().GetBool(FlagForce); force {
		return true
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Really %s '%s'? (y/N): ", action, target)
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.TrimSpace(response)
	if response != "y" && response != "Y" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled")
		return false
	}
	return true
}

// FormatError renders err for the terminal. Service errors show as "Code: message".
func FormatError(err error) string {
	var nre *operation.NameResolutionError
	if errors.As(err, &nre) {
		return nre.Error()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			return apiErr.ErrorCode()
		}
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), msg)
	}

	return err.Error()
}
