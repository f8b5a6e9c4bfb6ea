package config

// SupportedVersion is the only settings file version understood by the loader.
const SupportedVersion = "1"

// Settingsfile represents the structure of the vcbuild.yaml settings file.
// Every field is optional; absent fields keep their defaults.
type Settingsfile struct {
	Version      string                   `yaml:"version"`
	Jobs         int                      `yaml:"jobs"`
	Windows      WindowsDTO               `yaml:"windows"`
	MacOS        MacOSDTO                 `yaml:"macos"`
	Branches     map[string]string        `yaml:"branches"`
	Dependencies map[string]DependencyDTO `yaml:"dependencies"`
	Overlays     string                   `yaml:"overlays"`
	Stage        string                   `yaml:"stage"`
	Sources      map[string]string        `yaml:"sources"`
}

// WindowsDTO holds the cross toolchain settings.
type WindowsDTO struct {
	Triple string `yaml:"triple"`
}

// MacOSDTO holds the macOS settings.
type MacOSDTO struct {
	DeploymentTarget string `yaml:"deploymentTarget"`
}

// DependencyDTO describes where a vendored dependency is cloned from.
type DependencyDTO struct {
	Repo string `yaml:"repo"`
	Ref  string `yaml:"ref"`
}
