// Package settings carries build metadata and per-run configuration
// shared between the CLI layer and the library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tq"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the configuration for a single query invocation: where the
// document comes from, how the result is rendered, and how much the tool
// logs while doing it.
type Run struct {
	MinLogLevel  int8
	InputPath    string // empty means stdin
	InputFormat  string
	OutputFormat string
	Pretty       bool
	NoColor      bool
}

// NewCliParams returns Run defaults for command-line use: info-level
// logging, auto-detected input, TOML output.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel:  0,
		InputFormat:  "auto",
		OutputFormat: "toml",
	}
}
