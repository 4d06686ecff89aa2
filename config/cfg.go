package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"rcss/css"
	"rcss/property"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ViewportConfig struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
	}

	DocumentConfig struct {
		DPRatio   float64        `yaml:"dp_ratio" validate:"gt=0,lte=16"`
		Viewport  ViewportConfig `yaml:"viewport"`
		RootStyle string         `yaml:"root_style"`
	}

	DiagnosticsConfig struct {
		VariableCycles CycleReport `yaml:"variable_cycles"`
		Trace          bool        `yaml:"trace"`
	}

	Config struct {
		Version     int               `yaml:"version" validate:"eq=1"`
		Document    DocumentConfig    `yaml:"document"`
		Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
		Logging     LoggingConfig     `yaml:"logging"`
		Reporting   ReporterConfig    `yaml:"reporting"`
	}
)

// checkConfig covers what tags cannot express: every root_style declaration
// must be known to the property registry.
func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if !cfg.Diagnostics.VariableCycles.IsValid() {
		sl.ReportError(cfg.Diagnostics.VariableCycles, "variable_cycles", "VariableCycles", "cycle_report", "")
	}
	if len(cfg.Document.RootStyle) == 0 {
		return
	}
	reg, dict := property.Default(), property.NewDictionary()
	for _, d := range css.NewParser(zap.NewNop()).ParseInline([]byte(cfg.Document.RootStyle)) {
		if err := reg.ParseDeclaration(dict, d.Name, d.Value); err != nil {
			sl.ReportError(cfg.Document.RootStyle, "root_style", "RootStyle", "declarations", d.Name)
			return
		}
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
