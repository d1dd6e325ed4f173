package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Mainify is a small utility that wraps a non-standard Cobra entry point (one
// returning an error) and generates a standard Cobra entry point. It's useful
// for entry points to be able to rely on defer-based cleanup, which doesn't
// occur if the entry point terminates the process. This method allows the entry
// point to indicate an error while still performing cleanup.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}

// AtMostOneArgument is a Cobra arguments validator that allows at most one
// positional argument. Commands that require their argument unless an
// informational flag (like --version) is specified use this and perform the
// remaining validation themselves.
func AtMostOneArgument(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 1 {
		return errors.New("command accepts at most one argument")
	}
	return nil
}
