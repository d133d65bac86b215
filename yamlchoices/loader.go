// Package yamlchoices loads choices containers from declarative YAML
// definitions, so enumerations can live next to configuration instead of in
// code. Everything is built through the public constructors of the choices
// package; all population invariants apply unchanged to loaded data.
//
// A definition document looks like:
//
//	choices:
//	  - name: STATES
//	    entries:
//	      - constant: ONLINE
//	        value: 1
//	        display: Online
//	    subsets:
//	      - name: NOT_ONLINE
//	        constants: [DRAFT, OFFLINE]
//	  - name: PLANETS
//	    auto: full
//	    entries:
//	      - constant: EARTH
//	      - constant: MARS
//	        value: red-planet
package yamlchoices

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/choices"
)

// File is the root structure of a definition document.
type File struct {
	Choices []SetDef `yaml:"choices"`
}

// SetDef declares one named choices container.
type SetDef struct {
	Name    string      `yaml:"name"`    // required, unique per load
	Auto    string      `yaml:"auto"`    // "", "display" or "full"
	Entries []EntryDef  `yaml:"entries"` // ordered member definitions
	Subsets []SubsetDef `yaml:"subsets"` // owned subsets, registered in order
}

// EntryDef declares one member. Value and Display may be omitted only when
// the set's auto mode derives them.
type EntryDef struct {
	Constant string         `yaml:"constant"`
	Value    any            `yaml:"value"`
	Display  any            `yaml:"display"`
	Attrs    map[string]any `yaml:"attrs"`
}

// SubsetDef declares an owned subset of a set.
type SubsetDef struct {
	Name      string   `yaml:"name"`
	Constants []string `yaml:"constants"`
}

// Parse builds the containers declared in a single document, keyed by set
// name.
func Parse(data []byte) (map[string]*choices.Choices, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse choices document: %w", err)
	}

	sets := make(map[string]*choices.Choices, len(file.Choices))
	for _, def := range file.Choices {
		if def.Name == "" {
			return nil, fmt.Errorf("choice set without a name")
		}
		if _, dup := sets[def.Name]; dup {
			return nil, fmt.Errorf("choice set %s declared twice", def.Name)
		}
		set, err := build(def)
		if err != nil {
			return nil, fmt.Errorf("choice set %s: %w", def.Name, err)
		}
		sets[def.Name] = set
	}
	return sets, nil
}

// LoadFS scans root for *.yaml / *.yml files, parses each document and merges
// the declared sets. A set name appearing in two files is an error.
func LoadFS(fsys fs.FS, root string) (map[string]*choices.Choices, error) {
	merged := make(map[string]*choices.Choices)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		sets, err := Parse(content)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for name, set := range sets {
			if _, dup := merged[name]; dup {
				return fmt.Errorf("%s: choice set %s already declared in another file", path, name)
			}
			merged[name] = set
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan choices definitions: %w", err)
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("no choice sets found under %s", root)
	}
	return merged, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// build constructs one container through the constructor matching the set's
// auto mode, then registers its subsets.
func build(def SetDef) (*choices.Choices, error) {
	defs := make([]choices.Tuple, 0, len(def.Entries))
	for _, entry := range def.Entries {
		tuple := choices.Tuple{entry.Constant, entry.Value, entry.Display}
		if len(entry.Attrs) > 0 {
			tuple = append(tuple, entry.Attrs)
		}
		defs = append(defs, tuple)
	}

	var (
		set *choices.Choices
		err error
	)
	switch def.Auto {
	case "":
		set, err = choices.New(defs)
	case "display":
		set, err = choices.NewAutoDisplay(defs)
	case "full":
		items := make([]any, len(defs))
		for i, d := range defs {
			items[i] = d
		}
		set, err = choices.NewAuto(items)
	default:
		return nil, fmt.Errorf("unknown auto mode %q", def.Auto)
	}
	if err != nil {
		return nil, err
	}

	for _, subset := range def.Subsets {
		if _, err := set.AddSubset(subset.Name, subset.Constants); err != nil {
			return nil, err
		}
	}
	return set, nil
}
