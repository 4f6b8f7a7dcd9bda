package dto

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema resource names under schemas/.
const (
	schemaCreate = "todo-create.json"
	schemaUpdate = "todo-update.json"
)

var (
	createSchema = mustCompile(schemaCreate)
	updateSchema = mustCompile(schemaUpdate)
)

func mustCompile(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

// validateSchema checks doc against schema and converts violations into a
// *domain.ValidationError keyed by the offending property.
func validateSchema(schema *jsonschema.Schema, doc any) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &domain.ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	fields := make(map[string]string)
	collectSchemaErrors(ve, fields)
	return &domain.ValidationError{Fields: fields}
}

// collectSchemaErrors walks the cause tree and records the leaf messages.
func collectSchemaErrors(ve *jsonschema.ValidationError, fields map[string]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = "body"
		}
		if _, seen := fields[field]; !seen {
			fields[field] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, fields)
	}
}
