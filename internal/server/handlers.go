package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-dropper/internal/dropper"
	"github.com/ironsheep/color-dropper/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "dropper_load", "dropper_toggle").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
// Every handler runs on the Serve goroutine, the widget's only owner.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Surface
	case "dropper_load":
		return s.handleLoad(args)
	case "dropper_resize":
		return s.handleResize(args)

	// Pointer and mode
	case "dropper_pointer_move":
		return s.handlePointerMove(args)
	case "dropper_toggle":
		return s.handleToggle()
	case "dropper_commit":
		return s.handleCommit()
	case "dropper_state":
		return s.widget.State(), nil

	// Rendering and color
	case "dropper_magnifier":
		return s.handleMagnifier(args)
	case "dropper_sample_color":
		return s.handleSampleColor(args)
	case "dropper_palette":
		return s.handlePalette(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs tolerates a missing arguments object for tools without
// required parameters.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Surface Handlers ===

type loadArgs struct {
	Path string `json:"path"`
}

type loadResult struct {
	Image *imaging.ImageInfo `json:"image"`
	State dropper.Snapshot   `json:"state"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	// Re-read from disk so a file edited between loads is picked up.
	s.cache.Evict(a.Path)
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	s.widget.SetSource(img)
	return &loadResult{Image: info, State: s.widget.State()}, nil
}

// maxSurfaceWidth bounds the display surface buffer (16384x9216 RGBA, about 600 MB).
const maxSurfaceWidth = 16384

type resizeArgs struct {
	ViewportWidth int `json:"viewport_width"`
}

func (s *Server) handleResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.ViewportWidth < 0 {
		return nil, fmt.Errorf("viewport_width must not be negative, got %d", a.ViewportWidth)
	}
	if w, _ := dropper.SurfaceSize(s.widget.Config(), a.ViewportWidth); w > maxSurfaceWidth {
		return nil, fmt.Errorf("viewport_width %d gives a %dpx wide surface, limit is %d", a.ViewportWidth, w, maxSurfaceWidth)
	}
	s.widget.Resize(a.ViewportWidth)
	return s.widget.State(), nil
}

// === Pointer and Mode Handlers ===

type pointerArgs struct {
	ClientX *float64 `json:"client_x"`
	ClientY *float64 `json:"client_y"`
	PageX   *float64 `json:"page_x"`
	PageY   *float64 `json:"page_y"`
}

func (a pointerArgs) event() (dropper.PointerEvent, error) {
	if a.ClientX == nil || a.ClientY == nil {
		return dropper.PointerEvent{}, errors.New("client_x and client_y are required")
	}
	ev := dropper.PointerEvent{
		ClientX: *a.ClientX,
		ClientY: *a.ClientY,
		PageX:   *a.ClientX,
		PageY:   *a.ClientY,
	}
	if a.PageX != nil {
		ev.PageX = *a.PageX
	}
	if a.PageY != nil {
		ev.PageY = *a.PageY
	}
	return ev, nil
}

type pointerMoveArgs struct {
	pointerArgs
	Moves []pointerArgs `json:"moves"`
}

func (s *Server) handlePointerMove(args json.RawMessage) (interface{}, error) {
	var a pointerMoveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	moves := a.Moves
	if a.ClientX != nil || a.ClientY != nil {
		moves = append(moves, a.pointerArgs)
	}
	if len(moves) == 0 {
		return nil, errors.New("no pointer position given")
	}

	for i, m := range moves {
		ev, err := m.event()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		s.widget.PointerMove(ev)
	}
	s.widget.Tick()
	return s.widget.State(), nil
}

func (s *Server) handleToggle() (interface{}, error) {
	s.widget.Toggle()
	return s.widget.State(), nil
}

type commitResult struct {
	Committed bool             `json:"committed"`
	State     dropper.Snapshot `json:"state"`
}

func (s *Server) handleCommit() (interface{}, error) {
	committed := s.widget.Commit()
	return &commitResult{Committed: committed, State: s.widget.State()}, nil
}

// === Rendering and Color Handlers ===

type magnifierArgs struct {
	Raw bool `json:"raw"`
}

func (s *Server) handleMagnifier(args json.RawMessage) (interface{}, error) {
	var a magnifierArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Raw {
		return imaging.EncodePNG(s.widget.Magnifier().Image())
	}
	return imaging.EncodePNG(s.widget.Glass())
}

type sampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.SampleColor(s.widget.Surface().Image(), a.X, a.Y)
}

type paletteArgs struct {
	Count int `json:"count"`
}

func (s *Server) handlePalette(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	if _, ok := s.widget.LastSample(); !ok {
		return nil, errors.New("no pointer position sampled yet")
	}
	region := imaging.RegionFromRect(s.widget.Magnifier().Window())
	return imaging.DominantColors(s.widget.Surface().Image(), a.Count, &region)
}
