package rdmtest

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBase = "mem://rdmtest/"

var (
	schemasOnce sync.Once
	schemas     map[string]*jsonschema.Schema
	schemasErr  error
)

// paramSchemas compiles the embedded parameter schemas once, keyed by
// operation name.
func paramSchemas() (map[string]*jsonschema.Schema, error) {
	schemasOnce.Do(func() {
		schemas, schemasErr = compileSchemas()
	})
	return schemas, schemasErr
}

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	var ops []string
	for _, e := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, err
		}
		if err := compiler.AddResource(schemaBase+e.Name(), strings.NewReader(string(data))); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", e.Name(), err)
		}
		if e.Name() != "defs.json" {
			ops = append(ops, strings.TrimSuffix(e.Name(), ".json"))
		}
	}

	compiled := make(map[string]*jsonschema.Schema, len(ops))
	for _, op := range ops {
		s, err := compiler.Compile(schemaBase + op + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema for %s: %w", op, err)
		}
		compiled[op] = s
	}
	return compiled, nil
}

// validateParams checks a decoded parameter value against the schema for op.
// Operations without a schema accept anything.
func validateParams(op string, value any) error {
	all, err := paramSchemas()
	if err != nil {
		return err
	}
	s, ok := all[op]
	if !ok {
		return nil
	}
	if err := s.Validate(value); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return errors.New(describeValidation(ve))
		}
		return err
	}
	return nil
}

// describeValidation flattens a validation error tree into one line of
// "location: message" pairs.
func describeValidation(ve *jsonschema.ValidationError) string {
	var parts []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := strings.ReplaceAll(strings.TrimPrefix(e.InstanceLocation, "/"), "/", ".")
			if loc == "" {
				loc = "params"
			}
			parts = append(parts, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return "invalid parameters: " + strings.Join(parts, "; ")
}
