package curriculum

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed curriculum.yaml
var defaultYAML []byte

// Default returns the compiled-in curriculum.
// It panics if the embedded data does not decode, which can only happen
// from an authoring error caught by the package tests.
func Default() *Curriculum {
	c, err := Decode(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("decode embedded curriculum: %v", err))
	}
	return c
}

// Load reads a curriculum YAML file. An empty path returns Default().
func Load(path string) (*Curriculum, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode curriculum %s: %w", path, err)
	}
	return c, nil
}

// Decode parses curriculum YAML. Unknown fields are rejected so that typos
// in hand-authored files surface immediately.
func Decode(data []byte) (*Curriculum, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Curriculum
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
