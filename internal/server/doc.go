// Package server implements a headless MCP (Model Context Protocol) driver for the
// color dropper widget.
//
// The server owns exactly one dropper.Widget and exposes its operations as MCP
// tools, so the widget can be scripted and inspected without a window: load an
// image, resize the viewport, move the pointer, toggle picker mode, click, and
// fetch the rendered magnifier.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Surface:
//   - dropper_load: Load the source image and draw it
//   - dropper_resize: Size the display surface for a viewport width
//
// Pointer and mode:
//   - dropper_pointer_move: Move the pointer and render one frame
//   - dropper_toggle: Switch between idle and picker mode
//   - dropper_commit: Click; commits the hovered color in picker mode
//   - dropper_state: Inspect the widget
//
// Rendering and color:
//   - dropper_magnifier: Magnifier as base64 PNG
//   - dropper_sample_color: Exact color at a surface pixel
//   - dropper_palette: Dominant colors under the magnifier
//
// # Frames
//
// There is no render loop in headless mode. Each dropper_pointer_move call is
// one frame: every move it carries is offered to the widget and then a single
// tick applies the latest, exactly as a burst of pointer events within one
// display refresh would be handled by a windowed host.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
