package termout

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/termout/internal/version"
	"github.com/arthur-debert/termout/pkg/config"
	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/arthur-debert/termout/pkg/platform"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/terminal"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags are parsed
type app struct {
	verbose       int
	quiet         int
	color         string
	noInteractive bool
	configPath    string

	// renderer replaces the real terminal renderer in tests
	renderer render.Renderer

	cfg  *config.Config
	term *terminal.Terminal
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	a := &app{}
	return a.run(newRootCmd(a), os.Stderr)
}

func (a *app) run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	defer func() {
		if a.term != nil {
			a.term.Close()
		}
	}()

	if err == nil {
		// a status the command left open finished with it
		if a.term != nil {
			a.term.StopStatus()
		}
		return 0
	}
	if a.term != nil {
		// the spinner has to be gone before the error takes its line
		a.term.Close()
		if derr := a.term.DisplayErr(err); derr == nil {
			return 1
		}
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "termout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbose, "verbose", "v", MsgFlagVerbose)
	flags.CountVarP(&a.quiet, "quiet", "q", MsgFlagQuiet)
	flags.StringVar(&a.color, "color", "", MsgFlagColor)
	flags.BoolVar(&a.noInteractive, "no-interactive", false, MsgFlagNoInteractive)
	flags.StringVar(&a.configPath, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newStylesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd, a); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads configuration and builds the terminal for the command about
// to run
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("verbose") || cmd.Flags().Changed("quiet") {
		overrides["verbosity"] = a.verbose - a.quiet
	}
	if a.color != "" {
		overrides["color"] = a.color
	}
	if a.noInteractive {
		overrides["interactive"] = false
	}

	path := a.configPath
	if path != "" && cmd.Annotations[annotationConfigOptional] != "" {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := config.Load(config.LoadOptions{Path: path, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Console logs would tear through a live spinner, so they pause while
	// a status is displayed
	plat := platform.New()
	logging.Setup(logging.Options{
		Verbosity: cfg.Verbosity,
		Console:   cmd.ErrOrStderr(),
		Suppress:  plat.DisplayingStatus,
	})
	logging.LogCommand(cmd.CommandPath(), os.Args[1:])

	a.term = terminal.New(terminal.Options{
		Verbosity:   cfg.Verbosity,
		Color:       cfg.ColorMode(),
		Interactive: cfg.Interactive,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		Stdin:       cmd.InOrStdin(),
		Platform:    plat,
		Renderer:    a.renderer,
	})

	styleOverrides, err := cfg.StyleOverrides()
	if err != nil {
		if werr := a.term.DisplayWarning(fmt.Sprintf(MsgThemeUnavailable, err)); werr != nil {
			return werr
		}
		plain := *cfg
		plain.Theme = ""
		styleOverrides, _ = plain.StyleOverrides()
	}

	// Problems are shown after all styles are applied so the warning style
	// itself is final
	for _, problem := range a.term.InitializeStyles(styleOverrides) {
		if err := a.term.DisplayWarning(problem); err != nil {
			return err
		}
	}

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}
