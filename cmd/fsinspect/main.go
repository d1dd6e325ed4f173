package main

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/fsinspect/cmd"
	"github.com/mutagen-io/fsinspect/cmd/fsinspect/common/templating"
	"github.com/mutagen-io/fsinspect/pkg/filesystem"
	"github.com/mutagen-io/fsinspect/pkg/filesystem/mounts"
	"github.com/mutagen-io/fsinspect/pkg/fsinspect"
	"github.com/mutagen-io/fsinspect/pkg/identity"
	"github.com/mutagen-io/fsinspect/pkg/inspection"
	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// inspect generates the report for the specified path and writes it to the
// output, using the template if one is provided.
func inspect(path string, output io.Writer, template *template.Template, logger *logging.Logger) error {
	// Query metadata.
	query := filesystem.Lstat
	if rootConfiguration.dereference {
		query = filesystem.Stat
	}
	metadata, err := query(path)
	if err != nil {
		return errors.Wrapf(err, "unable to inspect %s", path)
	}
	logger.Debugf("Queried metadata for %s (mode %o)", path, metadata.Mode)

	// Create the inspector.
	inspector := inspection.NewInspector(
		mounts.NewResolver(rootConfiguration.mountTable, logger.Sublogger("mounts")),
		identity.NewResolver(logger.Sublogger("identity")),
		logger.Sublogger("inspection"),
	)

	// Generate the report.
	report := inspector.Inspect(metadata)

	// Write the report.
	if template != nil {
		if err := template.Execute(output, report); err != nil {
			return errors.Wrap(err, "unable to execute template")
		}
	} else if _, err := report.WriteTo(output); err != nil {
		return errors.Wrap(err, "unable to write report")
	}

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, arguments []string) error {
	// Configure color output.
	if err := cmd.ConfigureColor(rootConfiguration.color); err != nil {
		return err
	}

	// Handle informational flags.
	if rootConfiguration.version {
		fmt.Println(fsinspect.Version)
		return nil
	} else if rootConfiguration.legal {
		fmt.Print(fsinspect.LegalNotice)
		return nil
	}

	// If no path was specified, then print help information and bail.
	if len(arguments) == 0 {
		if err := command.Help(); err != nil {
			return errors.Wrap(err, "unable to show help information")
		}
		return errors.New("no path specified")
	}

	// Load any output template before doing any work.
	template, err := rootConfiguration.templateFlags.LoadTemplate()
	if err != nil {
		return err
	}

	// Create the logger.
	logger := logging.NewLogger(rootConfiguration.logLevel, os.Stderr)

	// Perform inspection.
	return inspect(arguments[0], os.Stdout, template, logger)
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "fsinspect [flags] <path>",
	Short: "fsinspect reports the identity and metadata of a single filesystem entry.",
	Args:  cmd.AtMostOneArgument,
	Run:   cmd.Mainify(rootMain),
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// version indicates whether or not to show version information and exit.
	version bool
	// legal indicates whether or not to show legal information and exit.
	legal bool
	// dereference indicates whether or not a trailing symbolic link should be
	// followed when querying metadata.
	dereference bool
	// logLevel is the log level for diagnostic output.
	logLevel logging.Level
	// color is the color mode for diagnostic output.
	color cmd.ColorMode
	// mountTable is the path to the mount table.
	mountTable string
	// templateFlags store custom templating behavior.
	templateFlags templating.TemplateFlags
}

func init() {
	// Set defaults.
	rootConfiguration.logLevel = logging.LevelWarn

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up informational flags.
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")
	flags.BoolVarP(&rootConfiguration.legal, "legal", "l", false, "Show legal information")

	// Wire up inspection flags.
	flags.BoolVarP(&rootConfiguration.dereference, "dereference", "L", false, "Follow a trailing symbolic link")
	flags.StringVar(&rootConfiguration.mountTable, "mount-table", mounts.DefaultTablePath, "Specify the mount table to scan")
	flags.MarkHidden("mount-table")

	// Wire up output flags.
	rootConfiguration.templateFlags.Register(flags)
	flags.Var(&rootConfiguration.logLevel, "log-level", "Set the diagnostic log level ("+logging.LevelNames()+")")
	flags.StringVar((*string)(&rootConfiguration.color), "color", string(cmd.ColorModeAuto), "Set when to colorize diagnostics (auto, always, never)")

	// Disable Cobra's use of mousetrap, which would otherwise refuse to run the
	// command when launched from Windows Explorer.
	cobra.MousetrapHelpText = ""
}

func main() {
	// Execute the root command. Errors from entry points terminate the process
	// via cmd.Mainify, so only flag parsing errors reach this point.
	rootCommand.SilenceErrors = true
	rootCommand.SilenceUsage = true
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
