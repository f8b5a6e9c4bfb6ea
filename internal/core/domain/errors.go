package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Error classes. Validation failures match ErrInvalidConfig, absent tools, scripts and templates
// match ErrToolMissing, and failing external commands match ErrToolFailed. Filesystem and store
// bookkeeping failures match only their specific sentinel below.
var (
	// ErrToolMissing is returned when a required executable, script or template is not available.
	ErrToolMissing = zerr.New("required tool not found")

	// ErrToolFailed is returned when an external command exits with a non-zero status.
	ErrToolFailed = zerr.New("external tool failed")

	// ErrInvalidConfig is returned when the request or the settings cannot be honored.
	ErrInvalidConfig = zerr.New("invalid build configuration")
)

var (
	// ErrUnknownTarget is returned when a target name is not one of the supported targets.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownLinkMode is returned when a link mode is not shared, static or both.
	ErrUnknownLinkMode = zerr.New("unknown link mode, expected 'shared', 'static' or 'both'")

	// ErrUnknownPlatform is returned when a platform is not host, windows or macos.
	ErrUnknownPlatform = zerr.New("unknown platform, expected 'host', 'windows' or 'macos'")

	// ErrMissingSource is returned when no source directory was given.
	ErrMissingSource = zerr.New("source directory is required")

	// ErrSourceNotFound is returned when the source directory does not exist.
	ErrSourceNotFound = zerr.New("source directory not found")

	// ErrNoBuilder is returned when no builder is registered for a target.
	ErrNoBuilder = zerr.New("no builder registered for target")

	// ErrDownloadScriptMissing is returned when the vendored download script is absent.
	ErrDownloadScriptMissing = zerr.New("dependency download script not found")

	// ErrOverlayMissing is returned when a project file or display adapter template is absent.
	ErrOverlayMissing = zerr.New("overlay template not found")

	// ErrSDKNotFound is returned when the macOS SDK path cannot be resolved.
	ErrSDKNotFound = zerr.New("macOS SDK path is empty")

	// ErrResetFailed is returned when build or install directories cannot be recreated.
	ErrResetFailed = zerr.New("failed to reset directory")

	// ErrOverlayFailed is returned when an overlay cannot be applied or restored.
	ErrOverlayFailed = zerr.New("failed to apply overlay")

	// ErrCopyFailed is returned when an artifact cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy artifact")

	// ErrStageFailed is returned when final artifacts cannot be staged into the consumer tree.
	ErrStageFailed = zerr.New("failed to stage artifacts")

	// ErrTranscriptFailed is returned when the log transcript cannot be written.
	ErrTranscriptFailed = zerr.New("failed to write log transcript")

	// ErrStoreCreateFailed is returned when the install record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create install record store directory")

	// ErrStoreReadFailed is returned when an install record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read install record")

	// ErrStoreUnmarshalFailed is returned when an install record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal install record")

	// ErrStoreMarshalFailed is returned when an install record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal install record")

	// ErrStoreWriteFailed is returned when an install record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write install record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrBuildExecutionFailed is returned when a target pipeline fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrDependencyFailed is returned when a target is skipped because a dependency failed.
	ErrDependencyFailed = zerr.New("skipped: dependency failed")
)

// CommandError describes a failed external command together with its captured diagnostics.
type CommandError struct {
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements error.
func (e *CommandError) Error() string {
	var b strings.Builder
	b.WriteString("command failed: ")
	b.WriteString(strings.Join(e.Args, " "))
	if e.Dir != "" {
		b.WriteString(" (cwd=")
		b.WriteString(e.Dir)
		b.WriteString(")")
	}
	if tail := strings.TrimSpace(e.Stderr); tail != "" {
		b.WriteString("\n")
		b.WriteString(tail)
	}
	return b.String()
}

// Unwrap exposes both the error class and the underlying process error.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrToolFailed}
	}
	return []error{ErrToolFailed, e.Err}
}

// Invalid classifies err as an invalid-configuration error.
func Invalid(err error) error {
	return errors.Join(ErrInvalidConfig, err)
}

// Fault attaches a specific sentinel to a bookkeeping failure so errors.Is can match it.
func Fault(sentinel, err error) error {
	return errors.Join(sentinel, err)
}

// Missing classifies err as a missing-tool error.
func Missing(err error) error {
	return errors.Join(ErrToolMissing, err)
}
