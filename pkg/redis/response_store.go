package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

const (
	responseKeyPrefix = "idempotency:"
	pendingMarker     = "processing"
)

var (
	// ErrReplayPending means another request holding the same key is still running
	ErrReplayPending = errors.New("request with this idempotency key is in progress")
	// ErrReplayMiss means no response has been recorded for the key
	ErrReplayMiss = errors.New("no recorded response")
)

// RecordedResponse is a completed response kept for replay
type RecordedResponse struct {
	Status      int    `json:"status"`
	Body        string `json:"body"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// ResponseStore records responses per idempotency key
type ResponseStore struct {
	lockTTL      time.Duration
	retentionTTL time.Duration
}

var (
	setResponseValue   = Set
	getResponseValue   = Get
	setNXResponseValue = SetNX
	delResponseValue   = Del
)

// NewResponseStore creates a response store
func NewResponseStore(lockTTL, retentionTTL time.Duration) *ResponseStore {
	return &ResponseStore{lockTTL: lockTTL, retentionTTL: retentionTTL}
}

// Lookup returns the recorded response for key, ErrReplayPending while the
// first request is still running, or ErrReplayMiss.
func (s *ResponseStore) Lookup(ctx context.Context, key string) (*RecordedResponse, error) {
	raw, err := getResponseValue(ctx, responseKeyPrefix+key)
	if err != nil {
		if IsNil(err) {
			return nil, ErrReplayMiss
		}
		return nil, err
	}
	if raw == pendingMarker {
		return nil, ErrReplayPending
	}

	var rec RecordedResponse
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Reserve marks key as in progress. It returns false if the key is already held.
func (s *ResponseStore) Reserve(ctx context.Context, key string) (bool, error) {
	return setNXResponseValue(ctx, responseKeyPrefix+key, pendingMarker, s.lockTTL)
}

// Record stores the completed response for key
func (s *ResponseStore) Record(ctx context.Context, key string, rec *RecordedResponse) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return setResponseValue(ctx, responseKeyPrefix+key, string(data), s.retentionTTL)
}

// Release drops the reservation so the request can be retried
func (s *ResponseStore) Release(ctx context.Context, key string) error {
	return delResponseValue(ctx, responseKeyPrefix+key)
}
