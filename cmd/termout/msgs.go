package termout

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A terminal output manager"
	MsgDemoShort       = "Show leveled output, nested statuses, tables and markdown"
	MsgStylesShort     = "List the configured styles"
	MsgConfigShort     = "Inspect and create configuration"
	MsgConfigInitShort = "Print or write the default configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigPathShort = "Print the configuration file path"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flags
	MsgFlagVerbose       = "Increase verbosity (-v completion lines, -vv debug, -vvv trace)"
	MsgFlagQuiet         = "Decrease verbosity (-q hides info, -qq warnings, -qqq errors)"
	MsgFlagColor         = "Color output: auto, always or never"
	MsgFlagNoInteractive = "Never animate spinners or use interactive prompts"
	MsgFlagConfig        = "Configuration file (default $XDG_CONFIG_HOME/termout/config.toml)"
	MsgFlagDelay         = "Pause between demo steps"
	MsgFlagWrite         = "Write the configuration file instead of printing it"
	MsgFlagForce         = "Replace an existing configuration file without asking"

	// Output
	MsgVersionFormat    = "termout %s (commit %s, built %s)"
	MsgConfigOverwrite  = "A configuration file already exists. Replace it?"
	MsgConfigKept       = "Kept the existing configuration file"
	MsgConfigWritten    = "Wrote configuration file"
	MsgStylesTitle      = "Styles"
	MsgStyleSamples     = "Samples"
	MsgThemeUnavailable = "Ignoring theme: %s"
	MsgErrNoCommand     = "no command specified"
)

// Long messages (from embedded files)
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/demo-example.txt
	msgDemoExampleRaw string
	MsgDemoExample    = strings.TrimRight(msgDemoExampleRaw, "\n")

	//go:embed msgs/demo-notes.md
	MsgDemoNotes string

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
