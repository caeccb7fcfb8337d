package fsio

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// jsonIndent is the indentation written by WriteJSON.
const jsonIndent = "  "

// ReadJSON reads the JSON file at path into v.
func ReadJSON(path string, v any) error {
	data, err := ReadBytes(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing JSON from %q: %w", path, err)
	}

	return nil
}

// WriteJSON writes v to path as 2-space-indented JSON, creating parent
// directories when createDirs is set.
func WriteJSON(path string, v any, createDirs bool) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding JSON for %q: %w", path, err)
	}

	_, err = WriteBytes(path, data, createDirs)

	return err
}

// ReadYAML reads the YAML file at path into v.
func ReadYAML(path string, v any) error {
	data, err := ReadBytes(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing YAML from %q: %w", path, err)
	}

	return nil
}

// WriteYAML writes v to path as YAML.
func WriteYAML(path string, v any, createDirs bool) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML for %q: %w", path, err)
	}

	_, err = WriteBytes(path, data, createDirs)

	return err
}

// ReadTOML reads the TOML file at path into v.
func ReadTOML(path string, v any) error {
	data, err := ReadBytes(path)
	if err != nil {
		return err
	}

	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing TOML from %q: %w", path, err)
	}

	return nil
}

// WriteTOML writes v to path as TOML.
func WriteTOML(path string, v any, createDirs bool) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding TOML for %q: %w", path, err)
	}

	_, err = WriteBytes(path, data, createDirs)

	return err
}

// ReadGob reads the gob-encoded file at path into v. Gob is this
// library's native binary object serialization; it makes no
// compatibility promise to other formats.
func ReadGob(path string, v any) error {
	data, err := ReadBytes(path)
	if err != nil {
		return err
	}

	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("decoding gob from %q: %w", path, err)
	}

	return nil
}

// WriteGob writes v to path as a gob stream.
func WriteGob(path string, v any, createDirs bool) error {
	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encoding gob for %q: %w", path, err)
	}

	_, err := WriteBytes(path, buf.Bytes(), createDirs)

	return err
}
