package server

import (
	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
	"github.com/ironsheep/colourspace-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also save the result to. Format is chosen from the extension (png, jpg, gif, tif, bmp)",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": "Optional rectangle to restrict the change to. The rest of the image is returned unchanged",
	}
}

func areaProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        imaging.AreaNames(),
		"description": "Optional named area to restrict the change to. Ignored when region is given",
	}
}

func modelProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        colorspace.KindNames(),
		"description": "Colour model to run the adjustment in. lch is perceptually uniform; hsl and hsv are cheaper",
	}
}

func operationProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        colorspace.OpNames(),
		"description": "Adjustment to apply",
	}
}

func amountProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Amount, nominally 0-1. For shift_hue it is a fraction of a full turn (0.5 = 180 degrees)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Sets this as the active image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Sampling
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel as hex, RGB, RGBA, HSL, HSV and LCh.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},

		// Colour Adjustment
		{
			Name:        "image_adjust_colour",
			Description: "Saturate, desaturate, lighten, darken or shift the hue of every pixel in HSL, HSV or LCh and return the result as base64-encoded PNG. Pass either model/operation/amount for one adjustment or steps for an ordered list. Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"model":     modelProperty(),
					"operation": operationProperty(),
					"amount":    amountProperty(),
					"steps": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"model":     modelProperty(),
								"operation": operationProperty(),
								"amount":    amountProperty(),
							},
							"required": []string{"model", "operation", "amount"},
						},
						"description": "Adjustments applied in order. Overrides model/operation/amount",
					},
					"region":      regionProperty(),
					"area":        areaProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_hue_rotate",
			Description: "Rotate the hue of every pixel by a number of degrees in HSL, HSV or LCh and return the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"model": modelProperty(),
					"degrees": map[string]interface{}{
						"type":        "number",
						"description": "Rotation in degrees. Negative values rotate backwards",
					},
					"region":      regionProperty(),
					"area":        areaProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "model", "degrees"},
			},
		},
		{
			Name:        "image_mix_colour",
			Description: "Blend every pixel toward a flat colour: channel = colour*opacity + original*(1-opacity). Returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"colour": map[string]interface{}{
						"type":        "string",
						"description": "Colour to mix in, as #RRGGBB, #RGB or r,g,b",
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Weight of the mix colour, 0-1. Default 0.5",
						"default":     0.5,
					},
					"region":      regionProperty(),
					"area":        areaProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "colour"},
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
