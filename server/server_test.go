package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PavelShpagin/ontos/alias"
	"github.com/PavelShpagin/ontos/graph"
	ontostest "github.com/PavelShpagin/ontos/internal/testing"
	"github.com/PavelShpagin/ontos/query"
)

func createTestServer(t *testing.T) *Server {
	t.Helper()
	store := ontostest.CreateTestStore(t)
	facade := query.NewFacade(store, zap.NewNop().Sugar())
	resolver := alias.NewResolver(map[string]string{"hound": "dog"}, store)
	return New(facade, resolver, "animals", zap.NewNop().Sugar())
}

func TestHandleGraph(t *testing.T) {
	srv := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/graph", nil)
	rec := httptest.NewRecorder()
	srv.handleGraph(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var g graph.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.NotEmpty(t, g.Nodes)
	assert.NotEmpty(t, g.Links)
}

func TestHandleGraphMethodNotAllowed(t *testing.T) {
	srv := createTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/graph", nil)
	rec := httptest.NewRecorder()
	srv.handleGraph(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWebSocketAsk(t *testing.T) {
	srv := createTestServer(t)
	srv.wg.Add(1)
	go srv.runHub()
	defer srv.cancel()

	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// first frame is the full graph
	var g graph.Graph
	require.NoError(t, conn.ReadJSON(&g))
	assert.NotEmpty(t, g.Nodes)

	// alias resolves before the query runs
	require.NoError(t, conn.WriteJSON(QueryMessage{Type: "ask", Op: "is_a", From: "hound", To: "animal"}))

	var answer AnswerMessage
	require.NoError(t, conn.ReadJSON(&answer))
	assert.Equal(t, "answer", answer.Type)
	assert.Equal(t, "dog", answer.From)
	assert.True(t, answer.Result)
}

func TestWebSocketAskPath(t *testing.T) {
	srv := createTestServer(t)
	srv.wg.Add(1)
	go srv.runHub()
	defer srv.cancel()

	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var g graph.Graph
	require.NoError(t, conn.ReadJSON(&g))

	require.NoError(t, conn.WriteJSON(QueryMessage{Type: "ask", Op: "path", From: "dog", To: "animal"}))

	var answer AnswerMessage
	require.NoError(t, conn.ReadJSON(&answer))
	assert.True(t, answer.Result)
	// dog -> canine -> mammal -> vertebrate -> animal
	assert.Len(t, answer.Path, 4)
}

func TestShutdownWithActiveClient(t *testing.T) {
	srv := createTestServer(t)
	srv.wg.Add(1)
	go srv.runHub()

	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var g graph.Graph
	require.NoError(t, conn.ReadJSON(&g))

	// keep the client busy while the server goes down
	require.NoError(t, conn.WriteJSON(QueryMessage{Type: "ask", Op: "path", From: "dog", To: "animal"}))

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- srv.Shutdown(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

func TestWebSocketUnknownTerm(t *testing.T) {
	srv := createTestServer(t)
	srv.wg.Add(1)
	go srv.runHub()
	defer srv.cancel()

	ts := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var g graph.Graph
	require.NoError(t, conn.ReadJSON(&g))

	require.NoError(t, conn.WriteJSON(QueryMessage{Type: "ask", Op: "is_a", From: "unicorn", To: "animal"}))

	var answer AnswerMessage
	require.NoError(t, conn.ReadJSON(&answer))
	assert.False(t, answer.Result)
	assert.Contains(t, answer.Error, "unicorn")
}
