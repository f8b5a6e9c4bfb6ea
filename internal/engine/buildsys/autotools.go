package buildsys

import (
	"path/filepath"

	"go.trai.ch/vcbuild/internal/core/domain"
)

var _ BuildSystem = (*Autotools)(nil)

// Autotools describes a configure-script build run inside a separate build directory.
type Autotools struct {
	Host    Host
	Source  string
	Build   string
	Install string
	Args    []string
	Env     map[string]string
}

// Flag appends configure arguments and returns a for chaining.
func (a *Autotools) Flag(args ...string) *Autotools {
	a.Args = append(a.Args, args...)
	return a
}

// ConfigureArgs returns the configure command line. A Windows host cannot execute the script
// directly, so it is handed to sh.
func (a *Autotools) ConfigureArgs() []string {
	var args []string
	if a.Host.Windows() {
		args = append(args, "sh")
	}
	args = append(args, filepath.Join(a.Source, "configure"))
	if a.Install != "" {
		args = append(args, "--prefix="+a.Install)
	}
	return append(args, a.Args...)
}

// Steps returns configure, make and make install.
func (a *Autotools) Steps() []domain.Step {
	return []domain.Step{
		step(domain.StepConfigure, a.Build, a.Env, a.ConfigureArgs()...),
		step(domain.StepBuild, a.Build, a.Env, "make", "-j", a.Host.jobs()),
		step(domain.StepInstall, a.Build, a.Env, "make", "install"),
	}
}
