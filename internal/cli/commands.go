package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ccid-tools/readerlist/internal/version"
	"github.com/ccid-tools/readerlist/pkg/config"
	"github.com/ccid-tools/readerlist/pkg/errors"
	"github.com/ccid-tools/readerlist/pkg/filesystem"
	"github.com/ccid-tools/readerlist/pkg/generator"
	"github.com/ccid-tools/readerlist/pkg/logging"
	"github.com/ccid-tools/readerlist/pkg/types"
	"github.com/ccid-tools/readerlist/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys types.FS) *cobra.Command {
	var (
		verbosity     int
		settingsPath  string
		configPath    string
		targetPath    string
		summaryFormat string
	)

	rootCmd := &cobra.Command{
		Use:     "readerlist",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfiguration(settingsPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(FlagSummaryFormat) {
				cfg.Output.SummaryFormat = summaryFormat
			}
			format, err := ui.ParseFormat(cfg.Output.SummaryFormat)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid summary format")
			}
			mode, err := cfg.Mode()
			if err != nil {
				return err
			}

			result, err := generator.Generate(generator.GenerateOptions{
				FileSystem: fsys,
				ConfigPath: configPath,
				TargetPath: targetPath,
				Readers:    cfg.ReaderOptions(),
				FileMode:   mode,
			})
			if err != nil {
				return err
			}

			out := cmd.ErrOrStderr()
			return ui.RenderSummary(out, ui.Summary{
				Source:    result.ConfigPath,
				Target:    result.TargetPath,
				Supported: len(result.Supported),
				Ignored:   len(result.Ignored),
			}, resolveFormat(format, out))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, FlagVerbose, "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, FlagSettings, "", "TOML file with readerlist settings")

	rootCmd.Flags().StringVar(&configPath, FlagConfigPath, "", `CCID supported readers config ("path/to/ccid_supported_readers_file")`)
	rootCmd.Flags().StringVar(&targetPath, FlagTargetPath, "", `file receiving the readers list ("path/to/target_file")`)
	rootCmd.Flags().StringVar(&summaryFormat, FlagSummaryFormat, "", "summary format on stderr: auto, term, text or json")
	_ = rootCmd.MarkFlagRequired(FlagConfigPath)
	_ = rootCmd.MarkFlagRequired(FlagTargetPath)
	_ = rootCmd.MarkFlagFilename(FlagConfigPath)
	_ = rootCmd.MarkFlagFilename(FlagTargetPath)
	_ = rootCmd.MarkPersistentFlagFilename(FlagSettings, "toml")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newGenConfigCmd(&settingsPath))
	rootCmd.AddCommand(newManCmd())

	initTemplateFormatting(rootCmd)

	return rootCmd
}

// resolveFormat picks a concrete format for out. Writers that are not files
// never get terminal styling.
func resolveFormat(format ui.Format, out io.Writer) ui.Format {
	if format != ui.FormatAuto {
		return format
	}
	if f, ok := out.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "readerlist version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(readerlist completion bash)

Zsh:
  $ readerlist completion zsh > "${fpath[1]}/_readerlist"

Fish:
  $ readerlist completion fish | source

PowerShell:
  PS> readerlist completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newGenConfigCmd(settingsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Print the settings readerlist would use, after applying the --config file
and READERLIST_* environment variables, as a TOML document. The output can be
saved and passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfiguration(*settingsPath)
			if err != nil {
				return err
			}
			data, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man <dir>",
		Short: MsgManShort,
		Long:  `Generate man pages for readerlist and its subcommands into the given directory`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", args[0])
			}
			header := &doc.GenManHeader{
				Title:   "READERLIST",
				Section: "1",
				Source:  "readerlist " + version.Version,
				Manual:  "readerlist manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, args[0]); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to generate man pages")
			}
			return nil
		},
	}
}
