package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	server := NewServer(testDeps())
	ss, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestServerListsTools(t *testing.T) {
	cs := connect(t)
	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	want := []string{"highest_random_score", "interpret_prompt", "simulate_word"}
	if len(names) != len(want) {
		t.Fatalf("got tools %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got tools %v, expected %v", names, want)
		}
	}
}

func TestServerCallSimulateWord(t *testing.T) {
	cs := connect(t)
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "simulate_word",
		Arguments: map[string]any{"word": "A"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool reported error: %+v", res.Content)
	}
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out SimulateWordResult
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode structured content: %v", err)
	}
	if out.Generations != 1 || out.Score != 2 || out.State != "Extinction" {
		t.Fatalf("unexpected result %+v", out)
	}
}

func TestServerCallReportsToolErrors(t *testing.T) {
	cs := connect(t)
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "simulate_word",
		Arguments: map[string]any{"word": "héllo"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for non-ASCII word")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	if err := Run(context.Background(), Config{Transport: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestRunHTTPStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{Transport: TransportHTTP, HTTPAddr: "127.0.0.1:0", Deps: testDeps()})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
