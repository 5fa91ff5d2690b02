package termout

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/termout/internal/version"
	"github.com/arthur-debert/termout/pkg/config"
	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/output"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// annotationConfigOptional lets a command run when --config names a file
// that does not exist yet
const annotationConfigOptional = "termout/config-optional"

func newDemoCmd(a *app) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		Long:    MsgDemoLong,
		Example: MsgDemoExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), a.term, delay)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 400*time.Millisecond, MsgFlagDelay)

	return cmd
}

func newStylesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStyles(a)
		},
	}
}

func showStyles(a *app) error {
	reg := a.term.Styles()
	names := reg.Names()

	nameCol := output.Column{Title: "Name", Cells: map[int]string{}}
	descCol := output.Column{Title: "Descriptor", Cells: map[int]string{}}
	for i, name := range names {
		descriptor, custom := reg.Custom(name)
		if !custom {
			st, _ := reg.Lookup(name)
			descriptor = st.String()
		}
		if descriptor == "" {
			descriptor = "none"
		}
		nameCol.Cells[i] = name
		descCol.Cells[i] = descriptor
	}
	nameCol.Cells[len(names)] = style.SpinnerKey
	descCol.Cells[len(names)] = reg.Spinner

	err := a.term.DisplayTable(output.Table{
		Title:   MsgStylesTitle,
		Columns: []output.Column{nameCol, descCol},
	})
	if err != nil {
		return err
	}

	if err := a.term.DisplayMiniHeader(MsgStyleSamples); err != nil {
		return err
	}
	for _, name := range names {
		st, ok := reg.Lookup(name)
		if !ok {
			log.Debug().Str("style", name).Msg("Skipping sample for unparsable style")
			continue
		}
		if err := a.term.Output(name, st, output.Options{Indent: "  "}); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			return a.term.DisplayRaw(string(data), output.WithoutNewline())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       MsgConfigPathShort,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.userConfigPath()
			return a.term.DisplayRaw(path, output.WithLink(path))
		},
	})

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       MsgConfigInitShort,
		Long:        MsgConfigInitLong,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				return a.term.DisplayRaw(content, output.WithoutNewline())
			}

			path := a.userConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				replace, err := a.term.Confirm(MsgConfigOverwrite, false)
				if err != nil {
					return err
				}
				if !replace {
					return a.term.DisplayInfo(MsgConfigKept, output.WithLink(path))
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrConfigWrite, "failed to create config directory").
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrConfigWrite, "failed to write config file").
					WithDetail("path", path)
			}
			return a.term.DisplaySuccess(MsgConfigWritten, output.WithLink(path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

// userConfigPath is the --config file, or the default location
func (a *app) userConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultPath()
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.term.DisplayRaw(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
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
		// Completion scripts must not depend on user configuration
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
