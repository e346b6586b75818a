package pkgshift

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/pkgshift/internal/version"
	"github.com/arthur-debert/pkgshift/pkg/config"
	"github.com/arthur-debert/pkgshift/pkg/deploy"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/paths"
	"github.com/arthur-debert/pkgshift/pkg/ui"
	"github.com/arthur-debert/pkgshift/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
	format     string
}

// runFlags are the per-run overrides of transform and deploy
type runFlags struct {
	output   string
	username string
	orgURL   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pkgshift",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newTransformCmd(g))
	rootCmd.AddCommand(newDeployCmd(g))
	rootCmd.AddCommand(newInspectCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func (r *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.username, "username", "", MsgFlagUsername)
	cmd.Flags().StringVar(&r.orgURL, "org-url", "", MsgFlagOrgURL)
}

// overrides maps the flags the user actually set onto config keys
func (r *runFlags) overrides(cmd *cobra.Command, outputFlag string) map[string]interface{} {
	o := map[string]interface{}{}
	flags := cmd.Flags()
	if outputFlag != "" && flags.Changed(outputFlag) {
		o["output.path"] = r.output
	}
	if flags.Changed("username") {
		o["context.username"] = r.username
	}
	if flags.Changed("org-url") {
		o["context.org_url"] = r.orgURL
	}
	return o
}

func (g *globalOptions) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if g.format != "" {
		overrides["output.format"] = g.format
	}
	cfg, err := config.Load(config.Options{Path: g.configPath, Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func (g *globalOptions) render(cmd *cobra.Command, cfg *config.Config, result interface{}) error {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf(MsgErrBadFormat, err)
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	if err := renderer.RenderResult(result); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return nil
}

func newTransformCmd(g *globalOptions) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:     "transform <package>",
		Short:   MsgTransformShort,
		Long:    MsgTransformLong,
		Example: MsgTransformExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(rf.overrides(cmd, "output"))
			if err != nil {
				return err
			}
			if cfg.Output.Path == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoOutput)
			}

			runner := deploy.NewRunner(afero.NewOsFs(), cfg, deploy.WithTreeWriter(deploy.NewSynthfsTree()))
			outcome, err := runner.Transform(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := runner.Write(outcome.Archive, cfg.Output.Path); err != nil {
				return err
			}
			return g.render(cmd, cfg, toRunResult(cmd.Name(), args[0], cfg.Output.Path, outcome))
		},
	}
	cmd.Flags().StringVarP(&rf.output, "output", "o", "", MsgFlagOutput)
	rf.register(cmd)
	return cmd
}

func newDeployCmd(g *globalOptions) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:     "deploy <package>",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(rf.overrides(cmd, "target"))
			if err != nil {
				return err
			}
			if cfg.Output.Path == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoTarget)
			}

			fs := afero.NewOsFs()
			runner := deploy.NewRunner(fs, cfg, deploy.WithBackend(deploy.NewFileBackend(fs, cfg.Output.Path)))
			outcome, err := runner.Deploy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, toRunResult(cmd.Name(), args[0], "", outcome))
		},
	}
	cmd.Flags().StringVarP(&rf.output, "target", "t", "", MsgFlagTarget)
	rf.register(cmd)
	return cmd
}

func newInspectCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <package>",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			inspection, err := deploy.NewRunner(afero.NewOsFs(), cfg).Inspect(args[0])
			if err != nil {
				return err
			}
			return g.render(cmd, cfg, toInspectResult(args[0], inspection))
		},
	}
}

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var write, resolved bool
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resolved {
				cfg, err := g.loadConfig(nil)
				if err != nil {
					return err
				}
				data, err := config.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			root, err := paths.ProjectRoot()
			if err != nil {
				return err
			}
			target := filepath.Join(root, "pkgshift.toml")
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists", target)
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write pkgshift.toml to the project root instead of stdout")
	cmd.Flags().BoolVar(&resolved, "resolved", false, "Print the merged configuration instead of the commented defaults")
	cmd.MarkFlagsMutuallyExclusive("write", "resolved")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
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
}

func toRunResult(command, source, output string, outcome *deploy.Outcome) *display.RunResult {
	result := &display.RunResult{
		Command:    command,
		Source:     source,
		Output:     output,
		Transforms: outcome.Transforms,
		Report:     outcome.Report,
		Timestamp:  time.Now(),
	}
	if outcome.Deploy != nil {
		result.Deploy = &display.DeployInfo{
			Backend:  outcome.Deploy.Backend,
			Target:   outcome.Deploy.Target,
			Bytes:    outcome.Deploy.Bytes,
			Checksum: outcome.Deploy.Checksum,
		}
	}
	return result
}

func toInspectResult(source string, in *deploy.Inspection) *display.InspectResult {
	result := &display.InspectResult{Source: source, Marked: in.Marked}
	for _, e := range in.Archive.Entries() {
		result.Entries = append(result.Entries, display.EntryInfo{Name: e.Name, Size: len(e.Content)})
	}
	if in.Manifest != nil {
		m := &display.ManifestInfo{Entry: in.ManifestName, Version: in.Manifest.Version}
		for _, d := range in.Manifest.Types {
			m.Types = append(m.Types, display.TypeInfo{Name: d.Name, Members: d.Members})
		}
		result.Manifest = m
	}
	return result
}
