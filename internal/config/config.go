// Package config loads generation options from a YAML file, a .env file and
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/barun-bash/uigen/internal/errors"
)

// FrameworkReact is the only supported markup flavour.
const FrameworkReact = "react"

// Naming is the casing convention for generated identifiers.
type Naming string

const (
	NamingTitle Naming = "title"
	NamingCamel Naming = "camel"
)

// DefaultImagePlaceholder is formatted with width and height.
const DefaultImagePlaceholder = "https://placehold.co/%dx%d"

// Environment overrides.
const (
	EnvFramework  = "UIGEN_FRAMEWORK"
	EnvIncludeIDs = "UIGEN_INCLUDE_IDS"
	EnvSingleFile = "UIGEN_SINGLE_FILE"
	EnvNaming     = "UIGEN_NAMING"
)

// Options controls code generation.
type Options struct {
	Framework        string `yaml:"framework"`
	IncludeIDs       bool   `yaml:"include_ids"`
	SingleFile       bool   `yaml:"single_file"`
	Naming           Naming `yaml:"naming"`
	ImagePlaceholder string `yaml:"image_placeholder"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Framework:        FrameworkReact,
		SingleFile:       true,
		Naming:           NamingTitle,
		ImagePlaceholder: DefaultImagePlaceholder,
	}
}

// Load reads options from path. A .env file in the working directory is
// loaded first; a missing YAML file yields defaults. UIGEN_* environment
// variables override file values.
func Load(path string) (Options, error) {
	_ = godotenv.Load()

	opts := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return opts, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &opts); err != nil {
				return opts, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvFramework); v != "" {
		opts.Framework = v
	}
	if v := os.Getenv(EnvNaming); v != "" {
		opts.Naming = Naming(v)
	}
	for name, dst := range map[string]*bool{
		EnvIncludeIDs: &opts.IncludeIDs,
		EnvSingleFile: &opts.SingleFile,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return opts, nil
}

// FromMap applies loosely typed options over the defaults. Unrecognized
// keys and values of the wrong type are ignored.
func FromMap(m map[string]any) Options {
	opts := Default()
	for k, v := range m {
		switch strings.ToLower(k) {
		case "framework":
			if s, ok := v.(string); ok {
				opts.Framework = s
			}
		case "include_ids", "includeids":
			if b, ok := v.(bool); ok {
				opts.IncludeIDs = b
			}
		case "single_file", "singlefile":
			if b, ok := v.(bool); ok {
				opts.SingleFile = b
			}
		case "naming", "naming_convention", "namingconvention":
			if s, ok := v.(string); ok {
				opts.Naming = Naming(s)
			}
		case "image_placeholder", "imageplaceholder":
			if s, ok := v.(string); ok {
				opts.ImagePlaceholder = s
			}
		}
	}
	return opts
}

// Normalize replaces unsupported values with defaults and returns one
// warning per replacement.
func (o *Options) Normalize() []*errors.Error {
	var warnings []*errors.Error

	fw := strings.ToLower(strings.TrimSpace(o.Framework))
	if fw == "" {
		fw = FrameworkReact
	}
	if fw != FrameworkReact {
		warnings = append(warnings, errors.Warning(errors.CodeUnknownSetting, errors.StageConfig,
			fmt.Sprintf("framework %q is not supported, using %q", o.Framework, FrameworkReact),
			suggest(fw, []string{FrameworkReact})))
		fw = FrameworkReact
	}
	o.Framework = fw

	naming := Naming(strings.ToLower(strings.TrimSpace(string(o.Naming))))
	switch naming {
	case NamingTitle, NamingCamel:
	case "":
		naming = NamingTitle
	default:
		warnings = append(warnings, errors.Warning(errors.CodeUnknownSetting, errors.StageConfig,
			fmt.Sprintf("naming %q is not supported, using %q", o.Naming, NamingTitle),
			suggest(string(naming), []string{string(NamingTitle), string(NamingCamel)})))
		naming = NamingTitle
	}
	o.Naming = naming

	if o.ImagePlaceholder == "" {
		o.ImagePlaceholder = DefaultImagePlaceholder
	}
	return warnings
}

func suggest(value string, candidates []string) string {
	if c := errors.Closest(value, candidates, 0.6); c != "" {
		return fmt.Sprintf("did you mean %q?", c)
	}
	return ""
}
