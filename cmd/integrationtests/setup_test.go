package integrationtests

import (
	auction "auction-house/internal/auctionService"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/internal/scheduler"
	"auction-house/internal/server"
	"auction-house/internal/settlement"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// testClock is a shared movable clock for service, engine, and scheduler.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{t: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// testEnv wires the full stack over the in-memory ledger with a fake clock.
// The scheduler runs its real sweep loop on a short ticker.
type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryLedger
	clock  *testClock
}

// SetupTestEnv initializes the stack for integration testing.
func SetupTestEnv(t *testing.T, start time.Time) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	clock := newTestClock(start)
	repo := repository.NewMemoryLedger()

	engine := settlement.NewEngine(repo, notifier.NoopSink{})
	engine.Now = clock.Now

	closeScheduler := scheduler.New(engine, repo, 5*time.Millisecond)
	closeScheduler.Now = clock.Now

	service := auction.NewAuctionService(repo, notifier.NoopSink{}, closeScheduler)
	service.Now = clock.Now

	go closeScheduler.Run(context.Background())
	t.Cleanup(closeScheduler.Stop)

	return &testEnv{
		router: server.SetupRouter(service, nil),
		repo:   repo,
		clock:  clock,
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func (e *testEnv) ExecuteRequest(t *testing.T, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the data field
// of the JSON envelope.
func (e *testEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := e.ExecuteRequest(t, method, url, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok {
			return data, w
		}
	}
	return resp, w
}
