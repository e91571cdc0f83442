package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// spaceSchema describes a color space argument, accepted by name or code.
func spaceSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"oneOf": []map[string]interface{}{
			{
				"type": "string",
				"enum": []string{"rgb", "xyz", "lab", "lch", "luv"},
			},
			{
				"type":    "integer",
				"minimum": 0,
				"maximum": 4,
			},
		},
		"description": description + ". Name (rgb, xyz, lab, lch, luv) or code (0-4)",
	}
}

// rasterSchema describes a 3×H×W nested array argument.
var rasterSchema = map[string]interface{}{
	"type":        "array",
	"description": "Band-major array [band][row][column]; the first dimension must have 3 bands",
	"items": map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "number"},
		},
	},
}

// dtypeSchema describes the sample type of raster values.
var dtypeSchema = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"float", "uint8", "uint16"},
	"default":     "float",
	"description": "Sample type of the raster values. float is 0-1; uint8 (0-255) and uint16 (0-65535) are scaled to 0-1 on input, and RGB output is scaled back",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_convert",
			Description: "Convert a single color value between RGB, XYZ, LAB, LCH and LUV. RGB is 0-1; LCH hue is in radians.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"minItems":    3,
						"maxItems":    3,
						"description": "The three components of the color in the source space",
					},
					"src": spaceSchema("Source color space"),
					"dst": spaceSchema("Destination color space"),
				},
				"required": []string{"value", "src", "dst"},
			},
		},
		{
			Name:        "color_convert_bulk",
			Description: "Convert every pixel of a 3×H×W raster between color spaces. Returns a new raster of the same shape.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"raster": rasterSchema,
					"src":    spaceSchema("Source color space"),
					"dst":    spaceSchema("Destination color space"),
					"dtype":  dtypeSchema,
				},
				"required": []string{"raster", "src", "dst"},
			},
		},

		// Saturation
		{
			Name:        "color_saturate_bulk",
			Description: "Scale the LCH chroma of every pixel of a 3×H×W RGB raster. 0 produces grays, 1 leaves colors unchanged, values above 1 boost saturation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"raster": rasterSchema,
					"satmult": map[string]interface{}{
						"type":        "number",
						"description": "Chroma multiplier. Default 1.0",
						"default":     1.0,
					},
					"dtype": dtypeSchema,
				},
				"required": []string{"raster"},
			},
		},

		// Helpers
		{
			Name:        "color_spaces",
			Description: "List the supported color spaces with their integer codes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "color_magick_to_operations",
			Description: "Translate ImageMagick convert options (-channel, -sigmoidal-contrast, -gamma, -modulate) into a color operations string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"options": map[string]interface{}{
						"type":        "string",
						"description": "ImageMagick convert options, e.g. \"-channel B -gamma 0.95 -modulate 100,125\"",
					},
				},
				"required": []string{"options"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
