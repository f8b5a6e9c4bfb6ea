// Package config provides the settings loader for vcbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file at the script root.
type Loader struct {
	logger   ports.Logger
	defaults domain.Settings
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, defaults: domain.DefaultSettings()}
}

// Load returns DefaultSettings merged with <root>/vcbuild.yaml when that file exists.
func (l *Loader) Load(root string) (domain.Settings, error) {
	path := domain.NewLayout(root).ConfigPath()

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the script root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l.defaults.Clone(), nil
		}
		return domain.Settings{}, domain.Invalid(
			domain.Fault(domain.ErrConfigReadFailed, zerr.With(err, "path", path)))
	}

	settings, err := Merge(l.defaults, data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.logger.Info("using settings from " + path)
	return settings, nil
}

// Parse decodes a settings file and merges it over the defaults.
func Parse(data []byte) (domain.Settings, error) {
	return Merge(domain.DefaultSettings(), data)
}

// Merge decodes a settings file and overlays it on a copy of base. base is left untouched.
func Merge(base domain.Settings, data []byte) (domain.Settings, error) {
	var file Settingsfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, domain.Invalid(domain.Fault(domain.ErrConfigParseFailed, err))
	}

	return merge(base.Clone(), &file)
}

func merge(s domain.Settings, file *Settingsfile) (domain.Settings, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		return s, invalid(zerr.With(zerr.New("unsupported settings version"), "version", file.Version))
	}
	if file.Jobs < 0 {
		return s, invalid(zerr.With(zerr.New("jobs must not be negative"), "jobs", file.Jobs))
	}
	if file.Jobs > 0 {
		s.Jobs = file.Jobs
	}
	if file.Windows.Triple != "" {
		s.WindowsTriple = file.Windows.Triple
	}
	if file.MacOS.DeploymentTarget != "" {
		s.DeploymentTarget = file.MacOS.DeploymentTarget
	}
	if file.Overlays != "" {
		s.OverlayDir = file.Overlays
	}
	if file.Stage != "" {
		s.StageDir = file.Stage
	}

	for name, branch := range file.Branches {
		t, err := domain.ParseTarget(name)
		if err != nil {
			return s, err
		}
		s.Branches[t] = branch
	}
	for name, src := range file.Sources {
		t, err := domain.ParseTarget(name)
		if err != nil {
			return s, err
		}
		s.Sources[t] = src
	}

	for name, dto := range file.Dependencies {
		i := vendoredIndex(s.Vendored, name)
		if i < 0 {
			return s, invalid(zerr.With(zerr.New("unknown vendored dependency"), "dependency", name))
		}
		if dto.Repo != "" {
			s.Vendored[i].Repo = dto.Repo
		}
		if dto.Ref != "" {
			s.Vendored[i].Ref = dto.Ref
		}
	}

	return s, nil
}

func vendoredIndex(deps []domain.VendoredDep, name string) int {
	for i, d := range deps {
		if d.Name == name {
			return i
		}
	}
	return -1
}

func invalid(err error) error {
	return domain.Invalid(domain.Fault(domain.ErrConfigParseFailed, err))
}
