package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildSettingsJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// the company-settings document, as a generic map.
func BuildSettingsJSONSchema() map[string]any {
	boolProp := map[string]any{"type": "boolean"}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"compliance": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"minimumConfidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
					"requireManualApproval": boolProp,
				},
			},
			"intelligence": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"supplierLearning":     boolProp,
					"categoryPrediction":   boolProp,
					"costCenterSuggestion": boolProp,
					"duplicateDetection":   boolProp,
				},
			},
			"defaults": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"paymentTermsDays": map[string]any{"type": "integer", "minimum": 0.0, "maximum": 365.0},
					"currency":         map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
					"expenseAccount":   map[string]any{"type": "string", "pattern": `^\d{4}$`},
				},
			},
			"tuning": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"similarityThreshold": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"taxTolerance":        map[string]any{"type": "string", "pattern": `^\d+(\.\d{1,2})?$`},
					"defaultVATRate":      map[string]any{"type": "integer", "minimum": 0.0, "maximum": 100.0},
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("settings.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("settings.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
