package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/color-dropper/internal/dropper"
	"github.com/ironsheep/color-dropper/internal/imaging"
)

// Server handles MCP protocol communication for one headless dropper widget.
type Server struct {
	cache  *imaging.ImageCache
	widget *dropper.Widget
	views  *headlessViews
	debug  bool
}

// Options configures a Server.
type Options struct {
	// Config is the widget geometry.
	Config dropper.Config
	// Debug logs every request method to stderr.
	Debug bool
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// headlessViews records what a visible host would display.
type headlessViews struct {
	border   dropper.Ring
	position dropper.Point
	label    string
	selected string
}

func (v *headlessViews) SetBorder(r dropper.Ring) { v.border = r }
func (v *headlessViews) MoveTo(p dropper.Point)   { v.position = p }
func (v *headlessViews) SetLabel(hex string)      { v.label = hex }
func (v *headlessViews) SetSelected(hex string)   { v.selected = hex }

// New creates a server with the default widget geometry.
func New() *Server {
	s, err := NewWithOptions(Options{Config: dropper.DefaultConfig()})
	if err != nil {
		panic(err) // default config is always valid
	}
	return s
}

// NewWithOptions creates a server. The widget surface is pinned at the viewport
// origin, so client coordinates equal surface coordinates.
func NewWithOptions(opts Options) (*Server, error) {
	views := &headlessViews{}
	w, err := dropper.New(opts.Config, dropper.Views{Magnifier: views, Selection: views}, dropper.FixedPlacer{})
	if err != nil {
		return nil, err
	}
	return &Server{
		cache:  imaging.NewImageCache(),
		widget: w,
		views:  views,
		debug:  opts.Debug,
	}, nil
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to w
// until r is exhausted. Requests are handled strictly in order on the calling
// goroutine, which is the widget's owner.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}
		if s.debug {
			log.Printf("request %v: %s", req.ID, req.Method)
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "color-dropper",
				"version": "0.1.0",
			},
		},
	}
}
