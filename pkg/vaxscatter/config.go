package vaxscatter

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML file over DefaultOptions. Keys absent from the
// file keep their defaults.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return opts, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return opts, opts.Validate()
}

// ApplyEnv overrides options from environment variables.
// VAXSCATTER_ADDR wins over PORT, which only sets the port.
func (o *Options) ApplyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		o.Addr = ":" + port
	}
	if addr := getenv("VAXSCATTER_ADDR"); addr != "" {
		o.Addr = addr
	}
	if data := getenv("VAXSCATTER_DATA"); data != "" {
		o.DataPath = data
	}
	if variant := getenv("VAXSCATTER_VARIANT"); variant != "" {
		o.Variant = Variant(variant)
	}
}
