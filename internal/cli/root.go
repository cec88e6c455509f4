package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sdlcforge/makefwd/internal/app"
	"github.com/sdlcforge/makefwd/internal/discovery"
	"github.com/sdlcforge/makefwd/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	modeGroupLabel   = "Mode"
	inputGroupLabel  = "Input"
	outputGroupLabel = "Output/formatting"
	miscGroupLabel   = "Misc"
)

func init() {
	// Register custom template function for flag grouping
	cobra.AddTemplateFunc("flagGroups", flagGroupsFunc)
}

// NewRootCmd creates the root command for makefwd. The default action
// discovers subdirectory Makefiles under --root and splices forwarding
// rules into the root Makefile.
func NewRootCmd() *cobra.Command {
	config := NewConfig()

	rootCmd := &cobra.Command{
		Use:     "makefwd",
		Short:   "Forward make targets from subdirectory Makefiles",
		Version: version.Version,
		Long: `makefwd discovers Makefiles in nested subdirectories under a root
directory and generates a parent Makefile whose rules forward target
invocations into the correct subdirectory, so "make build" at the root
runs the right subdirectory's "build" target.

Default behavior splices forwarding rules into the root Makefile. Use
flags for other operations:
  --list        Report discovered targets and collisions; write nothing
  --dry-run     Show what would be spliced, without writing it
  --lint        Check for cross-directory target name collisions
  --remove      Remove a previously spliced forwarding block`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := processFlagsAfterParse(cmd, config); err != nil {
				return err
			}

			if config.Remove {
				if err := validateRemoveFlags(config); err != nil {
					return err
				}
			}

			if config.Fix && !config.Lint {
				return fmt.Errorf("--fix requires --lint")
			}

			if config.DryRun && config.List {
				return fmt.Errorf("--dry-run cannot be used with --list")
			}

			root, err := discovery.ResolveRoot(config.Root)
			if err != nil {
				return err
			}
			config.Root = root
			if err := discovery.ValidateRootExists(root); err != nil {
				return err
			}

			if err := loadConfigFile(config.Root, config); err != nil {
				return err
			}
			if len(config.MakefilePriority) == 0 {
				config.MakefilePriority = []string{"Makefile", "GNUmakefile", "makefile"}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.UseColor = ResolveColorMode(config)
			return app.Run(config, os.Stdout)
		},
	}

	setupFlags(rootCmd, config)

	annotateFlag(rootCmd, "list", modeGroupLabel)
	annotateFlag(rootCmd, "dry-run", modeGroupLabel)
	annotateFlag(rootCmd, "lint", modeGroupLabel)
	annotateFlag(rootCmd, "fix", modeGroupLabel)
	annotateFlag(rootCmd, "remove", modeGroupLabel)

	annotateFlag(rootCmd, "root", inputGroupLabel)
	annotateFlag(rootCmd, "make-executable", inputGroupLabel)
	annotateFlag(rootCmd, "config-file", inputGroupLabel)
	annotateFlag(rootCmd, "makefile-priority", inputGroupLabel)
	annotateFlag(rootCmd, "exclude-dir", inputGroupLabel)
	annotateFlag(rootCmd, "mode", inputGroupLabel)

	annotateFlag(rootCmd, "format", outputGroupLabel)
	annotateFlag(rootCmd, "output", outputGroupLabel)
	annotateFlag(rootCmd, "color", outputGroupLabel)
	annotateFlag(rootCmd, "no-color", outputGroupLabel)
	annotateFlag(rootCmd, "keep-order-dirs", outputGroupLabel)
	annotateFlag(rootCmd, "keep-order-targets", outputGroupLabel)
	annotateFlag(rootCmd, "dir-order", outputGroupLabel)

	annotateFlag(rootCmd, "verbose", miscGroupLabel)

	rootCmd.SetUsageTemplate(usageTemplate)

	return rootCmd
}

// validateRemoveFlags checks for incompatible flags with --remove.
func validateRemoveFlags(config *Config) error {
	incompatibleFlags := []struct {
		isSet    bool
		flagName string
	}{
		{config.Lint, "--lint"},
		{config.Fix, "--fix"},
		{config.List, "--list"},
		{config.DryRun, "--dry-run"},
		{len(config.DirOrder) > 0, "--dir-order"},
		{config.KeepOrderDirs, "--keep-order-dirs"},
		{config.KeepOrderTargets, "--keep-order-targets"},
	}

	for _, flag := range incompatibleFlags {
		if flag.isSet {
			return fmt.Errorf("--remove cannot be used with %s", flag.flagName)
		}
	}

	return nil
}

// annotateFlag adds a group annotation to a flag for custom help grouping.
func annotateFlag(cmd *cobra.Command, flagName, group string) {
	// Try local flags first
	flag := cmd.Flags().Lookup(flagName)
	// If not found, try persistent flags
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(flagName)
	}

	if flag != nil {
		if flag.Annotations == nil {
			flag.Annotations = make(map[string][]string)
		}
		flag.Annotations["group"] = []string{group}
	}
}

// usageTemplate is a custom template that groups flags by their annotations.
const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{flagGroups .}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// flagGroupsFunc generates grouped flag output for the custom usage template.
func flagGroupsFunc(cmd *cobra.Command) string {
	groupOrder := []string{modeGroupLabel, inputGroupLabel, outputGroupLabel, miscGroupLabel}

	flagsByGroup := make(map[string][]string)
	seenFlags := make(map[string]bool)

	processFlags := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(flag *pflag.Flag) {
			if flag.Hidden {
				return
			}

			if seenFlags[flag.Name] {
				return
			}
			seenFlags[flag.Name] = true

			group := miscGroupLabel
			if flag.Annotations != nil {
				if groups, ok := flag.Annotations["group"]; ok && len(groups) > 0 {
					group = groups[0]
				}
			}

			usage := formatFlagUsage(flag)
			flagsByGroup[group] = append(flagsByGroup[group], usage)
		})
	}

	processFlags(cmd.Flags())
	processFlags(cmd.PersistentFlags())

	var sb strings.Builder
	for _, group := range groupOrder {
		flags, ok := flagsByGroup[group]
		if !ok || len(flags) == 0 {
			continue
		}

		sb.WriteString(group)
		sb.WriteString(":\n")
		for _, flagUsage := range flags {
			sb.WriteString(flagUsage)
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// formatFlagUsage formats a single flag for display in the help output.
func formatFlagUsage(flag *pflag.Flag) string {
	var sb strings.Builder

	if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
		sb.WriteString("  -")
		sb.WriteString(flag.Shorthand)
		sb.WriteString(", ")
	} else {
		sb.WriteString("      ")
	}

	sb.WriteString("--")
	sb.WriteString(flag.Name)

	if flag.Value.Type() != "bool" {
		sb.WriteString(" ")
		typeName := flag.Value.Type()
		switch typeName {
		case "stringSlice":
			typeName = "strings"
		case "intSlice":
			typeName = "ints"
		}
		sb.WriteString(typeName)
	}

	currentLen := sb.Len()
	paddingNeeded := 36 - currentLen
	if paddingNeeded > 0 {
		sb.WriteString(strings.Repeat(" ", paddingNeeded))
	} else {
		sb.WriteString("   ")
	}

	sb.WriteString(flag.Usage)

	if shouldShowDefault(flag) {
		sb.WriteString(fmt.Sprintf(" (default %s)", flag.DefValue))
	}

	sb.WriteString("\n")

	return sb.String()
}

// shouldShowDefault determines if a flag's default value should be displayed.
func shouldShowDefault(flag *pflag.Flag) bool {
	if flag.DefValue == "" {
		return false
	}
	if flag.Value.Type() == "bool" && flag.DefValue == "false" {
		return false
	}
	if flag.DefValue == "[]" {
		return false
	}
	return true
}
