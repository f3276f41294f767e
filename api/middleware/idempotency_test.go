package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type memoryStore struct {
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (m *memoryStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = value.(string)
	return true, nil
}

func (m *memoryStore) IdempotencyKey(scope, id string) string {
	return "wh:idempotency:" + scope + ":" + id
}

func countingHandler(calls *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"wh_id":1}`))
	})
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	var calls atomic.Int64
	handler := Idempotency(newMemoryStore(), nil)(countingHandler(&calls))

	body := `{"wh_name":"Central","capacity":100,"username":"abyron"}`

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(body))
		r.Header.Set("Idempotency-Key", "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected 201, got %d", i, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"wh_id":1`) {
			t.Fatalf("attempt %d: unexpected body %s", i, w.Body.String())
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected handler to run once, ran %d times", got)
	}
}

func TestIdempotencyKeyReuseWithDifferentBody(t *testing.T) {
	var calls atomic.Int64
	handler := Idempotency(newMemoryStore(), nil)(countingHandler(&calls))

	first := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(`{"wh_name":"A"}`))
	first.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(`{"wh_name":"B"}`))
	second.Header.Set("Idempotency-Key", "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, second)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reused key, got %d", w.Code)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected handler to run once, ran %d times", got)
	}
}

func TestIdempotencyWithoutHeaderPassesThrough(t *testing.T) {
	var calls atomic.Int64
	handler := Idempotency(newMemoryStore(), nil)(countingHandler(&calls))

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected handler to run twice, ran %d times", got)
	}
}

func TestIdempotencySkipsReads(t *testing.T) {
	var calls atomic.Int64
	store := newMemoryStore()
	handler := Idempotency(store, nil)(countingHandler(&calls))

	r := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if len(store.values) != 0 {
		t.Fatalf("expected nothing stored for GET, got %d entries", len(store.values))
	}
}

func TestIdempotencyNilStorePassesThrough(t *testing.T) {
	var calls atomic.Int64
	handler := Idempotency(nil, nil)(countingHandler(&calls))

	r := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(`{}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected handler to run, ran %d times", got)
	}
}
