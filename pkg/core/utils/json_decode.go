// Package utils provides small shared helpers for config decoding.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// DecodeLenient unmarshals hand-maintained config data into v.
// It tries strict JSON first, then Hjson (comments, unquoted keys, optional
// commas), then json-repair for near-JSON with trailing commas or single
// quotes. Operators edit the override table by hand, so strict decoding alone
// rejects too many otherwise usable files.
func DecodeLenient(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}

	if err := hjson.Unmarshal(data, v); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return fmt.Errorf("config is not valid JSON, Hjson, or repairable JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("repaired config still failed to decode: %v", err)
	}
	return nil
}

// RepairJSON fixes common JSON authoring errors (missing quotes, trailing
// commas, comments) and returns standard JSON.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}
