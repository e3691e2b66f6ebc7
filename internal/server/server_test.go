package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/color-dropper/internal/dropper"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.widget == nil {
		t.Fatal("New() did not create a widget")
	}
}

func TestNewWithOptions_InvalidConfig(t *testing.T) {
	cfg := dropper.DefaultConfig()
	cfg.Factor = 0

	_, err := NewWithOptions(Options{Config: cfg})
	if !errors.Is(err, dropper.ErrInitialization) {
		t.Errorf("expected an initialization error, got %v", err)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != 1 {
		t.Errorf("ID: got %v, want 1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	if len(toolsList) != 9 {
		t.Errorf("Expected 9 tools, got %d", len(toolsList))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	resp := s.handleRequest(req)

	// Notifications don't get responses
	if resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "nonexistent/method",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("Error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "init-1",
	}

	resp := s.handleInitialize(req)

	if resp.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", resp.ID)
	}
	if resp.JSONRPC != "2.0" {
		t.Errorf("JSONRPC: got %s, want 2.0", resp.JSONRPC)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}

	if serverInfo["name"] != "color-dropper" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "0.1.0" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := New()
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"dropper_toggle"}}`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	// One response per request with an ID, in order
	dec := json.NewDecoder(&out)
	var ids []float64
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error != nil {
			t.Errorf("response %v: unexpected error %+v", resp.ID, resp.Error)
		}
		ids = append(ids, resp.ID.(float64))
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("response IDs: got %v, want [1 2 3]", ids)
	}

	if s.widget.Mode() != dropper.ModePicker {
		t.Error("dropper_toggle over Serve did not reach the widget")
	}
}

func TestServe_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantID   interface{}
		wantCode int
		wantData string
	}{
		{
			name:     "tool failure",
			line:     `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"dropper_load","arguments":{"path":"/nonexistent/image.png"}}}`,
			wantID:   float64(1),
			wantCode: -32000,
			wantData: "/nonexistent/image.png",
		},
		{
			name:     "unknown tool",
			line:     `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"dropper_explode"}}`,
			wantID:   float64(2),
			wantCode: -32000,
			wantData: "dropper_explode",
		},
		{
			name:     "params not an object",
			line:     `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":[1,2]}`,
			wantID:   float64(3),
			wantCode: -32602,
		},
		{
			name:     "unknown method",
			line:     `{"jsonrpc":"2.0","id":"abc","method":"resources/list"}`,
			wantID:   "abc",
			wantCode: -32601,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := New().Serve(strings.NewReader(tt.line+"\n"), &out); err != nil {
				t.Fatalf("Serve failed: %v", err)
			}

			var resp MCPResponse
			if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response %q: %v", out.String(), err)
			}
			if resp.JSONRPC != "2.0" {
				t.Errorf("jsonrpc: got %q, want 2.0", resp.JSONRPC)
			}
			if resp.ID != tt.wantID {
				t.Errorf("id: got %v (%T), want %v", resp.ID, resp.ID, tt.wantID)
			}
			if resp.Result != nil {
				t.Errorf("error response carries a result: %v", resp.Result)
			}
			if resp.Error == nil {
				t.Fatal("expected an error")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code: got %d, want %d", resp.Error.Code, tt.wantCode)
			}
			if tt.wantData != "" {
				data, _ := resp.Error.Data.(string)
				if !strings.Contains(data, tt.wantData) {
					t.Errorf("data: got %q, want it to mention %q", data, tt.wantData)
				}
			}
		})
	}
}
