package buildsys

import (
	"maps"

	"go.trai.ch/vcbuild/internal/core/domain"
)

var _ BuildSystem = (*CMake)(nil)

// CMake describes an out-of-tree CMake build.
type CMake struct {
	Host    Host
	Source  string
	Build   string
	Install string
	Defines map[string]string
	Env     map[string]string
}

// Define sets a cache entry and returns c for chaining.
func (c *CMake) Define(key, value string) *CMake {
	if c.Defines == nil {
		c.Defines = map[string]string{}
	}
	c.Defines[key] = value
	return c
}

// DefineBool sets a boolean cache entry.
func (c *CMake) DefineBool(key string, value bool) *CMake {
	return c.Define(key, OnOff(value))
}

// DefineAll copies every entry of defs.
func (c *CMake) DefineAll(defs map[string]string) *CMake {
	for k, v := range defs {
		c.Define(k, v)
	}
	return c
}

// ConfigureArgs returns the cmake configure command line. Defines are sorted by key.
func (c *CMake) ConfigureArgs() []string {
	defs := maps.Clone(c.Defines)
	if defs == nil {
		defs = map[string]string{}
	}
	defs["CMAKE_BUILD_TYPE"] = BuildType
	if c.Install != "" {
		defs["CMAKE_INSTALL_PREFIX"] = c.Install
	}

	args := []string{"cmake", "-S", c.Source, "-B", c.Build}
	if g := c.Host.Generator(); g != "" {
		args = append(args, "-G", g)
	}
	for _, k := range sortedKeys(defs) {
		args = append(args, "-D"+k+"="+defs[k])
	}
	return args
}

// Steps returns configure, build and install. Unix-like hosts drive the generated makefiles
// directly; a Windows host goes through cmake's generator-neutral commands.
func (c *CMake) Steps() []domain.Step {
	steps := []domain.Step{step(domain.StepConfigure, c.Build, c.Env, c.ConfigureArgs()...)}

	if c.Host.Windows() {
		return append(steps,
			step(domain.StepBuild, c.Build, c.Env,
				"cmake", "--build", c.Build, "--config", BuildType, "--parallel", c.Host.jobs()),
			step(domain.StepInstall, c.Build, c.Env,
				"cmake", "--install", c.Build, "--config", BuildType),
		)
	}
	return append(steps,
		step(domain.StepBuild, c.Build, c.Env, "make", "-j", c.Host.jobs()),
		step(domain.StepInstall, c.Build, c.Env, "make", "install"),
	)
}
