// Package cli provides the command-line interfaces of the Lazo launcher and
// its satellite modules.
package cli

import (
	"fmt"
	"os"

	"github.com/qorex-scitech/lazo/internal/cli/commands"
	"github.com/qorex-scitech/lazo/internal/cli/config"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// newBaseCmd creates a root command carrying the shared persistent flags and
// the config and logger setup.
func newBaseCmd(use, short, long string) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg, cmd.ErrOrStderr())

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Lazo visual modeling suite
`)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lazo.yaml)")
	cmd.PersistentFlags().String("bin-dir", "", "Directory holding the module binaries")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().String("log-format", "", "Log format (text|json)")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|yaml)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(NewCompletionCommand())
	return cmd
}

// NewLauncherCmd creates the root command of the launcher.
func NewLauncherCmd() *cobra.Command {
	cmd := newBaseCmd("lazo", "Lazo - visual modeling suite launcher",
		`Lazo creates modeling projects and opens them in the node runtime or
the model editor.

Run without arguments in a terminal to open the home screen.`)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if !commands.IsTerminal() {
			return cmd.Help()
		}
		base, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return commands.RunHome(cmd, base)
	}

	cmd.AddCommand(commands.NewNewCommand())
	cmd.AddCommand(commands.NewOpenCommand())
	cmd.AddCommand(commands.NewVersionCommand("lazo", Version))
	return cmd
}

func addProjectPathFlag(cmd *cobra.Command, projectPath string) {
	cmd.PersistentFlags().String(commands.ProjectPathFlag, projectPath, "Project directory")
	_ = cmd.MarkPersistentFlagDirname(commands.ProjectPathFlag)
}

// NewModelCmd creates the root command of the model editor. projectPath is
// the default for --project-path.
func NewModelCmd(projectPath string) *cobra.Command {
	cmd := newBaseCmd("lazo-model", "Lazo model editor",
		`The model editor edits the block diagram of a Lazo project.

Run without arguments in a terminal to open the editor screen.`)
	addProjectPathFlag(cmd, projectPath)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if !commands.IsTerminal() {
			return commands.NewInfoCommand().RunE(cmd, nil)
		}
		return commands.RunModelScreen(cmd)
	}

	cmd.AddCommand(commands.NewInfoCommand())
	cmd.AddCommand(commands.NewKindsCommand())
	cmd.AddCommand(commands.NewBlockCommand())
	cmd.AddCommand(commands.NewExportCommand())
	cmd.AddCommand(commands.NewVersionCommand("lazo-model", Version))
	return cmd
}

// NewNodeCmd creates the root command of the node runtime. projectPath is
// the default for --project-path.
func NewNodeCmd(projectPath string) *cobra.Command {
	cmd := newBaseCmd("lazo-node", "Lazo node runtime",
		`The node runtime runs the nodes of a Lazo project.

Run without arguments in a terminal to open the runtime screen.`)
	addProjectPathFlag(cmd, projectPath)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if !commands.IsTerminal() {
			return commands.NewStatusCommand().RunE(cmd, nil)
		}
		return commands.RunNodeScreen(cmd)
	}

	cmd.AddCommand(commands.NewStatusCommand())
	cmd.AddCommand(commands.NewRunCommand())
	cmd.AddCommand(commands.NewVersionCommand("lazo-node", Version))
	return cmd
}

func execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// Execute runs the launcher.
func Execute() error {
	return execute(NewLauncherCmd())
}

// ExecuteModel runs the model editor. The project path is scanned from the
// raw arguments first so a malformed --project-path falls back to the
// current directory instead of failing.
func ExecuteModel() error {
	return executeSatellite(NewModelCmd, os.Args[1:])
}

// ExecuteNode runs the node runtime.
func ExecuteNode() error {
	return executeSatellite(NewNodeCmd, os.Args[1:])
}

func executeSatellite(newCmd func(string) *cobra.Command, args []string) error {
	path, rest := project.PathFromArgs(args)
	cmd := newCmd(path)
	cmd.SetArgs(rest)
	return execute(cmd)
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.

To load completions:

Bash:
  $ source <(lazo completion bash)

Zsh:
  $ lazo completion zsh > "${fpath[1]}/_lazo"

Fish:
  $ lazo completion fish | source

PowerShell:
  PS> lazo completion powershell | Out-String | Invoke-Expression
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
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
