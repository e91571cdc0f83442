package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expected := []string{
		"color_convert",
		"color_convert_bulk",
		"color_saturate_bulk",
		"color_spaces",
		"color_magick_to_operations",
	}

	if len(tools) != len(expected) {
		t.Errorf("Expected %d tools, got %d", len(expected), len(tools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool name %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expected {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Missing expected tool: %s", name)
		}
	}
}

func TestToolDefinitions_HaveDescriptions(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Description == "" {
			t.Errorf("Tool %s has empty description", tool.Name)
		}
	}
}

func TestToolDefinitions_HaveValidSchemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.InputSchema == nil {
			t.Errorf("Tool %s has nil InputSchema", tool.Name)
			continue
		}

		schemaType, ok := tool.InputSchema["type"]
		if !ok {
			t.Errorf("Tool %s schema missing 'type'", tool.Name)
		} else if schemaType != "object" {
			t.Errorf("Tool %s schema type should be 'object', got %v", tool.Name, schemaType)
		}

		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("Tool %s schema missing 'properties'", tool.Name)
		}
	}
}

func TestToolDefinitions_RequiredArguments(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"color_convert", []string{"value", "src", "dst"}},
		{"color_convert_bulk", []string{"raster", "src", "dst"}},
		{"color_saturate_bulk", []string{"raster"}},
		{"color_magick_to_operations", []string{"options"}},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			if !ok {
				t.Fatalf("tool %s not defined", tt.tool)
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatalf("tool %s has no required list", tt.tool)
			}
			if len(required) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", required, tt.required)
			}
			for i := range required {
				if required[i] != tt.required[i] {
					t.Errorf("required[%d]: got %s, want %s", i, required[i], tt.required[i])
				}
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required argument %s has no property schema", name)
				}
			}
		})
	}
}

func TestToolDefinitions_SpaceArguments(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, name := range []string{"src", "dst"} {
			p, ok := props[name]
			if !ok {
				continue
			}
			schema := p.(map[string]interface{})
			variants, ok := schema["oneOf"].([]map[string]interface{})
			if !ok || len(variants) != 2 {
				t.Errorf("%s.%s: expected name and code variants", tool.Name, name)
				continue
			}
			names := variants[0]["enum"].([]string)
			if len(names) != 5 {
				t.Errorf("%s.%s: expected 5 space names, got %v", tool.Name, name, names)
			}
			if variants[1]["maximum"] != 4 {
				t.Errorf("%s.%s: code maximum should be 4, got %v", tool.Name, name, variants[1]["maximum"])
			}
		}
	}
}
