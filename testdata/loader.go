// Package testdata provides the embedded data files that drive the data-driven parts
// of the contract suites, and helpers for loading and parsing them.
package testdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/factoriolab/calc-test-harness/framework/caltest"
)

//go:embed data-files
var dataFilesRoot embed.FS

const dataBasePath = "data-files"

// SourceInfo is the raw content of one data file.
type SourceInfo struct {
	FilePath string
	BaseName string
	Data     []byte
}

// ParseInto parses the file content, which may be JSON or YAML, into target.
func (s SourceInfo) ParseInto(target any) error {
	if err := ParseJSONOrYAML(s.Data, target); err != nil {
		return fmt.Errorf("error parsing %q: %w", s.BaseName, err)
	}
	return nil
}

// ParseJSONOrYAML is used in the same way as json.Unmarshal, but falls back to YAML
// parsing when the data is not valid JSON.
func ParseJSONOrYAML(data []byte, target any) error {
	if json.Valid(data) {
		return json.Unmarshal(data, target)
	}
	return yaml.Unmarshal(data, target)
}

// LoadDataFile reads one data file. The path is relative to testdata/data-files.
func LoadDataFile(path string) (SourceInfo, error) {
	data, err := dataFilesRoot.ReadFile(dataBasePath + "/" + path)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return SourceInfo{FilePath: path, BaseName: filepath.Base(path), Data: data}, nil
}

// LoadAllDataFiles reads every data file in a directory, in directory order. The path
// is relative to testdata/data-files.
func LoadAllDataFiles(path string) ([]SourceInfo, error) {
	files, err := dataFilesRoot.ReadDir(dataBasePath + "/" + path)
	if err != nil {
		return nil, err
	}
	ret := make([]SourceInfo, 0, len(files))
	for _, file := range files {
		source, err := LoadDataFile(path + "/" + file.Name())
		if err != nil {
			return nil, err
		}
		ret = append(ret, source)
	}
	return ret, nil
}

// LoadAndParseAllTestSuites calls LoadAllDataFiles and parses each resulting file into
// the specified type, failing the current test scope on any error.
func LoadAndParseAllTestSuites[V any](t *caltest.T, dirName string) []V {
	sources, err := LoadAllDataFiles(dirName)
	require.NoError(t, err)

	ret := make([]V, 0, len(sources))
	for _, source := range sources {
		var suite V
		require.NoError(t, source.ParseInto(&suite))
		ret = append(ret, suite)
	}
	return ret
}
