package domain

// Command is one external process invocation.
type Command struct {
	// Args is the argument vector; Args[0] is the executable.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overlays the process environment.
	Env map[string]string
	// Capture suppresses streaming of the output to the console.
	Capture bool
	// LogPath is the transcript the invocation is appended to. Empty disables the transcript.
	LogPath string
}

// Output is the result of a finished Command.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Step is a named command of a build plan.
type Step struct {
	Name    string
	Command Command
}

// Overlay is a file copied into the upstream tree for the duration of a build.
type Overlay struct {
	Source string
	Dest   string
}

// Artifact copies the files matching Pattern into DestDir after install.
type Artifact struct {
	Pattern string
	DestDir string
}

// Plan is the full list of actions needed to build one target.
type Plan struct {
	Target    Target
	Overlays  []Overlay
	Steps     []Step
	Artifacts []Artifact
}

// Step names used by the builders.
const (
	StepConfigure = "configure"
	StepBuild     = "build"
	StepInstall   = "install"
)
