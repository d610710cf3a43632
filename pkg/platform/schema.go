package platform

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// schemaBaseURL names the embedded schemas independently of the working
// directory, so validation errors never mention host paths.
const schemaBaseURL = "mem://uitext/"

var eventSchemaFiles = map[EventKind]string{
	EventMenuAction: "schema/menu_action.schema.json",
	EventTextLayout: "schema/text_layout.schema.json",
}

var (
	eventSchemasOnce sync.Once
	eventSchemas     map[EventKind]*jsonschema.Schema
	eventSchemasErr  error
)

// compileEventSchemas compiles the embedded wire schemas once.
func compileEventSchemas() (map[EventKind]*jsonschema.Schema, error) {
	eventSchemasOnce.Do(func() {
		compiled := make(map[EventKind]*jsonschema.Schema, len(eventSchemaFiles))
		for kind, path := range eventSchemaFiles {
			data, err := schemaFS.ReadFile(path)
			if err != nil {
				eventSchemasErr = fmt.Errorf("read %s: %w", path, err)
				return
			}
			url := schemaBaseURL + path
			compiler := jsonschema.NewCompiler()
			if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
				eventSchemasErr = fmt.Errorf("add schema resource %s: %w", path, err)
				return
			}
			schema, err := compiler.Compile(url)
			if err != nil {
				eventSchemasErr = fmt.Errorf("compile schema %s: %w", path, err)
				return
			}
			compiled[kind] = schema
		}
		eventSchemas = compiled
	})
	return eventSchemas, eventSchemasErr
}

// validatePayload checks a decoded event payload against the schema for kind.
func validatePayload(kind EventKind, payload any) error {
	schemas, err := compileEventSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEventKind, kind)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
