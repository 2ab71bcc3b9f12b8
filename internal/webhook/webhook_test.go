package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

func testAlert() RouteAlert {
	return NewRouteAlert(models.Route{
		Start:              geo.Coordinate{Lng: 77.19, Lat: 28.61},
		End:                geo.Coordinate{Lng: 77.23, Lat: 28.61},
		DistanceKm:         3.9,
		IntersectedAreaIDs: []string{"crime-area-1"},
	}, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
}

func newTestWorker(cfg WorkerConfig) *AlertWorker {
	log, _ := test.NewNullLogger()
	w := NewAlertWorker(nil, log, cfg)
	w.sleep = func(context.Context, time.Duration) {}
	return w
}

func TestDeliver_SignsPayload(t *testing.T) {
	// Подготовка
	var gotBody, gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL, Secret: "s3cret", MaxRetries: 3})
	payload, err := json.Marshal(testAlert())
	require.NoError(t, err)

	// Действие
	ok := worker.Deliver(context.Background(), string(payload))

	// Проверки
	assert.True(t, ok)
	assert.Equal(t, string(payload), gotBody)
	assert.Equal(t, Sign(string(payload), "s3cret"), gotSignature)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL, MaxRetries: 5, BaseDelay: 10 * time.Millisecond})
	var delays []time.Duration
	worker.sleep = func(_ context.Context, d time.Duration) { delays = append(delays, d) }

	payload, _ := json.Marshal(testAlert())
	ok := worker.Deliver(context.Background(), string(payload))

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, delays)
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL, MaxRetries: 2})
	payload, _ := json.Marshal(testAlert())

	assert.False(t, worker.Deliver(context.Background(), string(payload)))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURLOrBadPayload(t *testing.T) {
	worker := newTestWorker(WorkerConfig{})
	payload, _ := json.Marshal(testAlert())

	assert.False(t, worker.Deliver(context.Background(), string(payload)))
	assert.False(t, worker.Deliver(context.Background(), "{"))
}

// fakeRedis переопределяет только LPUSH
type fakeRedis struct {
	redis.Cmdable
	key    string
	values []any
	err    error
}

func (f *fakeRedis) LPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.key = key
	f.values = append(f.values, values...)
	return redis.NewIntResult(int64(len(f.values)), nil)
}

func TestRedisAlertPublisher(t *testing.T) {
	client := &fakeRedis{}
	publisher := NewRedisAlertPublisher(client)

	require.NoError(t, publisher.Publish(context.Background(), testAlert()))

	assert.Equal(t, AlertQueueKey, client.key)
	require.Len(t, client.values, 1)
	var decoded RouteAlert
	require.NoError(t, json.Unmarshal(client.values[0].([]byte), &decoded))
	assert.Equal(t, testAlert(), decoded)
}

func TestRedisAlertPublisher_Error(t *testing.T) {
	publisher := NewRedisAlertPublisher(&fakeRedis{err: errors.New("connection refused")})
	assert.Error(t, publisher.Publish(context.Background(), testAlert()))
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), testAlert()))
}
