package dataset

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Dataset names, also used as schema names.
const (
	Verbs        = "verbs"
	Conjugations = "conjugations"
	Sentences    = "sentences"
)

// File schemas check the container shape only. Entries are checked one by one
// against a record schema so a bad entry does not discard the whole file.
const (
	verbRecord     = "verb"
	sentenceRecord = "sentence"
)

var recordSchemas = map[string]string{
	Verbs:     verbRecord,
	Sentences: sentenceRecord,
}

var compileSchemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	names := []string{Verbs, Conjugations, Sentences, verbRecord, sentenceRecord}

	for _, name := range names {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := c.AddResource(schemaURL(name), doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		s, err := c.Compile(schemaURL(name))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
})

func schemaURL(name string) string {
	return "schema://dataset/" + name + ".json"
}

// Validate checks the shape of a whole dataset file.
func Validate(name string, raw []byte) error {
	switch name {
	case Verbs, Conjugations, Sentences:
		return validate(name, raw)
	default:
		return fmt.Errorf("unknown dataset %q", name)
	}
}

// ValidateRecord checks a single entry of the named dataset.
func ValidateRecord(name string, raw []byte) error {
	record, ok := recordSchemas[name]
	if !ok {
		return fmt.Errorf("dataset %q has no record schema", name)
	}
	return validate(record, raw)
}

func validate(schemaName string, raw []byte) error {
	schemas, err := compileSchemas()
	if err != nil {
		return err
	}
	s, ok := schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema %q", schemaName)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
