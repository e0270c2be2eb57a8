package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// relationSchema validates a taxonomy replacement file: a JSON object mapping
// a skill name to an array of related skill names.
const relationSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string", "minLength": 1}
	}
}`

// LoadFile builds a Taxonomy from a JSON relation file. The file is validated
// against the taxonomy schema before parsing so that a malformed table fails
// at startup rather than producing silent non-matches.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Taxonomy from raw JSON relation data.
func Parse(data []byte) (*Taxonomy, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(relationSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy data: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return nil, fmt.Errorf("invalid taxonomy data: %s", errs[0].String())
		}
		return nil, fmt.Errorf("invalid taxonomy data")
	}

	var relations map[string][]string
	if err := json.Unmarshal(data, &relations); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy data: %w", err)
	}
	return New(relations), nil
}
