package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointerSchema describes one pointer position.
func pointerSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"client_x": map[string]interface{}{"type": "number", "description": "Pointer X relative to the viewport"},
			"client_y": map[string]interface{}{"type": "number", "description": "Pointer Y relative to the viewport"},
			"page_x":   map[string]interface{}{"type": "number", "description": "Pointer X relative to the page. Defaults to client_x"},
			"page_y":   map[string]interface{}{"type": "number", "description": "Pointer Y relative to the page. Defaults to client_y"},
		},
		"required": []string{"client_x", "client_y"},
	}
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	moveSchema := pointerSchema()
	props := moveSchema["properties"].(map[string]interface{})
	props["moves"] = map[string]interface{}{
		"type":        "array",
		"items":       pointerSchema(),
		"description": "Several moves within one frame. Only the last one is rendered",
	}
	moveSchema["required"] = []string{}

	return []Tool{
		// Surface
		{
			Name:        "dropper_load",
			Description: "Load the image shown on the display surface and draw it at the current surface size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "dropper_resize",
			Description: "Resize the display surface for a viewport width (surface = 80% of the width at 16:9) and redraw the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"viewport_width": map[string]interface{}{
						"type":        "integer",
						"description": "Viewport width in pixels; rejected when the surface would exceed 16384px wide",
						"minimum":     0,
					},
				},
				"required": []string{"viewport_width"},
			},
		},

		// Pointer and mode
		{
			Name:        "dropper_pointer_move",
			Description: "Move the pointer and render one frame: sample the hovered color, redraw the magnifier and move it after the pointer.",
			InputSchema: moveSchema,
		},
		{
			Name:        "dropper_toggle",
			Description: "Toggle between idle and picker mode.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "dropper_commit",
			Description: "Click on the display surface. In picker mode the hovered color becomes the selected color.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "dropper_state",
			Description: "Return mode, hovered and selected colors, magnifier border and position, and surface geometry.",
			InputSchema: emptySchema(),
		},

		// Rendering and color
		{
			Name:        "dropper_magnifier",
			Description: "Return the magnifier as base64-encoded PNG, by default as the circular glass with its border and label.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"raw": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the square magnifier buffer without the glass frame",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "dropper_sample_color",
			Description: "Get the exact color at a display surface pixel in hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate on the display surface (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate on the display surface (0-based)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "dropper_palette",
			Description: "Extract the dominant colors of the neighbourhood currently shown in the magnifier.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
				},
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
