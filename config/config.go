// Package config holds the build options the front end carries for the
// backend, and the project file they are read from.
//
// A project directory holds either tawa.yaml or tawa.toml:
//
//	Package: hello
//	Language: ^1.0
//	Options:
//	  OptLevel: 2
//	  Flags: [fast-math]
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawac", "config")

// LanguageVersion is the version of the language this front end accepts.
const LanguageVersion = "1.0.0"

const (
	YAMLFile = "tawa.yaml"
	TOMLFile = "tawa.toml"
)

// MaxOptLevel is the highest optimization level.
const MaxOptLevel = 3

// ErrNoProject is returned by Find and Load for a directory without a
// project file.
var ErrNoProject = stderrors.New("no " + YAMLFile + " or " + TOMLFile + " found")

// Options are passed through to the backend as they are. Nothing in the
// front end branches on them.
type Options struct {
	Target    string   `yaml:"Target,omitempty" toml:"target,omitempty"`
	TestMode  bool     `yaml:"TestMode,omitempty" toml:"test-mode,omitempty"`
	DebugInfo bool     `yaml:"DebugInfo,omitempty" toml:"debug-info,omitempty"`
	OptLevel  int      `yaml:"OptLevel,omitempty" toml:"opt-level,omitempty"`
	Flags     []string `yaml:"Flags,omitempty" toml:"flags,omitempty"`
}

func (o Options) Validate() error {
	if o.OptLevel < 0 || o.OptLevel > MaxOptLevel {
		return tracerr.Errorf("optimization level %d is out of range 0-%d", o.OptLevel, MaxOptLevel)
	}
	return nil
}

// Project is the content of a project file.
type Project struct {
	Package  string  `yaml:"Package" toml:"package"`
	Language string  `yaml:"Language,omitempty" toml:"language,omitempty"`
	Options  Options `yaml:"Options,omitempty" toml:"options,omitempty"`
}

// Validate checks the package name, the options and that the language
// constraint admits LanguageVersion.
func (p *Project) Validate() error {
	if p.Package == "" {
		return tracerr.Errorf("project file names no package")
	}
	if err := p.Options.Validate(); err != nil {
		return err
	}
	if p.Language == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(p.Language)
	if err != nil {
		return tracerr.Errorf("invalid language constraint %q: %v", p.Language, err)
	}
	if ok, errs := constraint.Validate(semver.MustParse(LanguageVersion)); !ok {
		reason := "no match"
		if len(errs) > 0 {
			reason = errs[0].Error()
		}
		return tracerr.Errorf("package %s needs language %s, have %s: %s", p.Package, p.Language, LanguageVersion, reason)
	}
	return nil
}

// Find returns the project file in dir. tawa.yaml is preferred when both
// exist.
func Find(dir string) (string, error) {
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", tracerr.Wrap(err)
		}
	}
	return "", ErrNoProject
}

// Load finds, decodes and validates the project file in dir.
func Load(dir string) (*Project, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	p, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	plog.Debugf("loaded %s: package %s, options %+v", path, p.Package, p.Options)
	return p, nil
}

// Decode parses a project file, picking the format from the extension of
// name. Unknown keys are errors in both formats.
func Decode(name string, data []byte) (*Project, error) {
	var p Project
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &p); err != nil {
			return nil, tracerr.Errorf("%s: %v", name, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, tracerr.Errorf("%s: %v", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, tracerr.Errorf("%s: unknown key %s", name, undecoded[0])
		}
	default:
		return nil, tracerr.Errorf("%s: not a yaml or toml project file", name)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Write stores p in dir as tawa.toml when asTOML is set and as tawa.yaml
// otherwise, refusing to replace an existing project file.
func Write(dir string, p *Project, asTOML bool) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if existing, err := Find(dir); err == nil {
		return "", tracerr.Errorf("%s already exists", existing)
	} else if err != ErrNoProject {
		return "", err
	}

	name := YAMLFile
	if asTOML {
		name = TOMLFile
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	defer f.Close()

	if asTOML {
		err = toml.NewEncoder(f).Encode(p)
	} else {
		var out []byte
		out, err = yaml.Marshal(p)
		if err == nil {
			_, err = f.Write(out)
		}
	}
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return path, nil
}
