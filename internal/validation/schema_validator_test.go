package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const optionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"chance": {"type": ["string", "number"]},
		"multiplier": {"type": "number", "minimum": 0}
	},
	"required": ["name", "chance"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := writeFile(t, tmpDir, "option.schema.json", optionSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid option", data: `{"name": "Gold", "chance": "1K", "multiplier": 15}`},
		{name: "numeric chance", data: `{"name": "Gold", "chance": 1000}`},
		{name: "missing required field", data: `{"name": "Gold"}`, errorMsg: "required"},
		{name: "negative multiplier", data: `{"name": "Gold", "chance": 1, "multiplier": -1}`, errorMsg: "/multiplier"},
		{name: "empty name", data: `{"name": "", "chance": 1}`, errorMsg: "/name"},
		{name: "invalid JSON", data: `{"name": "Gold", "chance": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "data.json", tt.data)

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidationErrorIsSentinel(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "option.schema.json", optionSchema)

	err := v.ValidateBytes([]byte(`{"chance": 1}`), schemaPath)
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

func TestSchemaValidator_RegisterSchema(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("mem://option.json", []byte(optionSchema)))

	assert.NoError(t, v.ValidateBytes([]byte(`{"name": "Bronze", "chance": "10"}`), "mem://option.json"))
	assert.ErrorIs(t, v.ValidateBytes([]byte(`{"name": "Bronze"}`), "mem://option.json"), ErrSchemaValidation)

	assert.Error(t, v.RegisterSchema("mem://broken.json", []byte(`{`)))
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	schemaPath := writeFile(t, tmpDir, "object.schema.json", `{"type": "object"}`)

	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateFile(filepath.Join(tmpDir, "nonexistent.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "object.schema.json", `{"type": "object"}`)

	data := []byte(`{"test": "value"}`)
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Len(t, v.schemas, 1)

	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestResolvePath_FindsModuleFile(t *testing.T) {
	path, err := ResolvePath("configs/schemas/forge.schema.json")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
