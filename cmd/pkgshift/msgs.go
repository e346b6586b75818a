package pkgshift

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Prepare metadata packages for deployment"
	MsgTransformShort  = "Transform a package and write the result"
	MsgDeployShort     = "Transform a package and deploy it"
	MsgInspectShort    = "Show a package's entries and manifest"
	MsgGenConfigShort  = "Print a starter pkgshift.toml"
	MsgGenConfigLong   = "Print the default configuration with every value commented out."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate a completion script for bash, zsh, fish or powershell."

	// Status messages
	MsgNoChanges = "No transform changed the package."

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrNoOutput   = "no output path: pass --output or set output.path"
	MsgErrNoTarget   = "no deploy target: pass --target or set output.path"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrBadFormat  = "invalid --format: %w"
	MsgErrRender     = "failed to render output: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default: pkgshift.toml in the project root)"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagOutput   = "Output path; a .zip suffix writes a zip file"
	MsgFlagTarget   = "Deploy target path for the file backend"
	MsgFlagUsername = "Deploying username, used by inject_username patterns"
	MsgFlagOrgURL   = "Target org URL, used by inject_org_url patterns"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/transform-long.txt
	msgTransformLongRaw string
	MsgTransformLong    = strings.TrimSpace(msgTransformLongRaw)

	//go:embed msgs/transform-example.txt
	msgTransformExampleRaw string
	MsgTransformExample    = strings.TrimRight(msgTransformExampleRaw, "\n")

	//go:embed msgs/deploy-long.txt
	msgDeployLongRaw string
	MsgDeployLong    = strings.TrimSpace(msgDeployLongRaw)

	//go:embed msgs/deploy-example.txt
	msgDeployExampleRaw string
	MsgDeployExample    = strings.TrimRight(msgDeployExampleRaw, "\n")

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)
)
