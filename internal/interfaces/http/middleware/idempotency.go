package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hubtel-wallet.backend/pkg/logger"
	"hubtel-wallet.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the key while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	codeIdempotencyConflict = "IDEMPOTENCY_CONFLICT"
	codeIdempotencyMismatch = "IDEMPOTENCY_KEY_REUSED"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the recorded response when a write is retried
// with the same Idempotency-Key. Keys are scoped per identity. A key reused
// with a different payload is rejected with 422. If redis is unreachable the
// request is served without replay.
func IdempotencyMiddleware(store *redis.ResponseStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		owner := "anonymous"
		if id, ok := GetIdentityID(c); ok {
			owner = id.String()
		}
		storageKey := fmt.Sprintf("%s:%s:%s", owner, c.FullPath(), key)
		ctx := c.Request.Context()

		fingerprint, err := bodyFingerprint(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "BAD_REQUEST",
				"message": "unreadable request body",
			})
			return
		}

		rec, err := store.Lookup(ctx, storageKey)
		switch {
		case err == nil && rec.Fingerprint != fingerprint:
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
				"code":    codeIdempotencyMismatch,
				"message": "idempotency key was used with a different payload",
			})
			return
		case err == nil:
			c.Header("X-Idempotency-Hit", "true")
			c.Data(rec.Status, "application/json; charset=utf-8", []byte(rec.Body))
			c.Abort()
			return
		case errors.Is(err, redis.ErrReplayPending):
			abortInProgress(c)
			return
		case !errors.Is(err, redis.ErrReplayMiss):
			logger.Warn(ctx, "Idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		reserved, err := store.Reserve(ctx, storageKey)
		if err != nil {
			logger.Warn(ctx, "Idempotency reserve failed", zap.Error(err))
			c.Next()
			return
		}
		if !reserved {
			abortInProgress(c)
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			err = store.Record(ctx, storageKey, &redis.RecordedResponse{
				Status:      status,
				Body:        w.body.String(),
				Fingerprint: fingerprint,
			})
		} else {
			// failed requests may be retried
			err = store.Release(ctx, storageKey)
		}
		if err != nil {
			logger.Warn(ctx, "Idempotency bookkeeping failed", zap.Error(err))
		}
	}
}

// bodyFingerprint hashes the request body and puts it back for the handler
func bodyFingerprint(c *gin.Context) (string, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func abortInProgress(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusConflict, gin.H{
		"code":    codeIdempotencyConflict,
		"message": "request already in progress",
	})
}
