package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// taxonomySchema validates the shape of an external taxonomy JSON file
// before it replaces the embedded defaults.
const taxonomySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "required": ["keywords", "strong_verbs"],
    "properties": {
      "keywords": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 1
      },
      "strong_verbs": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 1
      },
      "metric_hints": {
        "type": "array",
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

// fileRole is the on-disk shape of one role table.
type fileRole struct {
	Keywords    []string `json:"keywords"`
	StrongVerbs []string `json:"strong_verbs"`
	MetricHints []string `json:"metric_hints,omitempty"`
}

// LoadFile builds a Store from a taxonomy JSON file. The file maps role ids
// to keyword/verb tables and is validated against the embedded schema. Roles
// in the file are merged over the embedded defaults, so a partial file only
// overrides the roles it names. A missing generic role keeps the default.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(taxonomySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy file: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid taxonomy file %s: %s", path, strings.Join(msgs, "; "))
	}

	var fileRoles map[string]fileRole
	if err := json.Unmarshal(data, &fileRoles); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	store := NewStore()
	for id, role := range fileRoles {
		store.roles[normalize(id)] = roleEntry{
			Keywords:    role.Keywords,
			StrongVerbs: role.StrongVerbs,
			MetricHints: role.MetricHints,
		}
	}
	return store, nil
}
