package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// inputSchema is the subset of JSON Schema the tools in this server declare:
// a flat object of typed properties with optional enums and defaults, plus a
// required list.
type inputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]propertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

type propertySchema struct {
	Type    string   `json:"type"`
	Enum    []string `json:"enum"`
	Default any      `json:"default"`
}

// normalizeArguments validates args against a tool's declared schema and
// returns a copy with declared defaults filled in for omitted fields.
// Unknown fields, missing required fields, enum violations and type
// mismatches are errors. Array items pass through untouched; the upstream
// API judges their contents.
func normalizeArguments(raw json.RawMessage, args map[string]any) (map[string]any, error) {
	var s inputSchema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid tool schema: %w", err)
	}

	out := make(map[string]any, len(args))

	// Walk argument names sorted so the reported error is deterministic.
	names := make([]string, 0, len(args))
	for k := range args {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, name := range names {
		prop, ok := s.Properties[name]
		if !ok {
			return nil, fmt.Errorf("unknown argument %q", name)
		}
		v, err := coerceValue(name, prop, args[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}

	for name, prop := range s.Properties {
		if _, ok := out[name]; !ok && prop.Default != nil {
			v, err := coerceValue(name, prop, prop.Default)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
	}

	for _, name := range s.Required {
		if _, ok := out[name]; !ok {
			return nil, fmt.Errorf("missing required argument %q", name)
		}
	}
	return out, nil
}

func coerceValue(name string, prop propertySchema, v any) (any, error) {
	switch prop.Type {
	case "string":
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q must be a string", name)
		}
		if len(prop.Enum) > 0 && !slices.Contains(prop.Enum, s) {
			return nil, fmt.Errorf("argument %q must be one of: %s", name, strings.Join(prop.Enum, ", "))
		}
		return s, nil

	case "integer":
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("argument %q must be an integer", name)
			}
			return int(n), nil
		case int:
			return n, nil
		}
		return nil, fmt.Errorf("argument %q must be an integer", name)

	case "number":
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
		return nil, fmt.Errorf("argument %q must be a number", name)

	case "boolean":
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("argument %q must be a boolean", name)
		}
		return b, nil

	case "array":
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("argument %q must be an array", name)
		}
		return arr, nil
	}
	return v, nil
}
