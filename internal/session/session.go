package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/google/uuid"       // Random session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// CookieName is the cookie carrying the signed session token
const CookieName = "feedback_session"

// record is the session state stored in Redis
type record struct {
	Username  string    `json:"username"`   // Authenticated identity
	CreatedAt time.Time `json:"created_at"` // Session creation time
}

// Manager holds sessions in Redis, keyed by a random id.
// The TTL on each key provides implicit expiry; logout deletes the key so a
// stolen cookie is useless after Destroy even though its signature is valid.
type Manager struct {
	rdb    *redis.Client // Redis client
	secret string        // Cookie signing secret
	ttl    time.Duration // Session lifetime
}

// NewManager creates a session manager backed by the given Redis client
func NewManager(rdb *redis.Client, secret string, ttl time.Duration) *Manager {
	return &Manager{rdb: rdb, secret: secret, ttl: ttl}
}

// TTL returns the configured session lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a session for username and returns the signed cookie value.
// Each login gets a fresh session id; any prior identity in the cookie slot is
// simply overwritten by the new cookie.
func (m *Manager) Start(ctx context.Context, username string) (string, error) {
	id := uuid.NewString() // Random session id
	// Store the session record in Redis with the configured TTL
	if err := m.setRecord(ctx, id, record{Username: username, CreatedAt: time.Now()}); err != nil {
		return "", err // Return error if Redis write fails
	}
	// Wrap the session id in a signed token for the cookie
	return signToken(id, m.secret, m.ttl)
}

// Identity resolves a cookie value to the logged-in username.
// An invalid signature, an expired token, or a missing Redis key all yield an
// empty identity with no error; only Redis failures are reported.
func (m *Manager) Identity(ctx context.Context, cookieValue string) (string, error) {
	// Verify the cookie signature and extract the session id
	id, err := parseToken(cookieValue, m.secret)
	if err != nil {
		return "", nil // Tampered or expired cookie: unauthenticated
	}
	rec, found, err := m.getRecord(ctx, id) // Look up the session record
	if err != nil {
		return "", err // Redis failure
	}
	// Missing key means the session expired or was destroyed
	if !found {
		return "", nil
	}
	return rec.Username, nil // Return the authenticated identity
}

// Destroy removes the session referenced by the cookie value
func (m *Manager) Destroy(ctx context.Context, cookieValue string) error {
	// Extract the session id; a bad cookie has no session to destroy
	id, err := parseToken(cookieValue, m.secret)
	if err != nil {
		return nil
	}
	return m.rdb.Del(ctx, sessionKey(id)).Err() // Delete the session key
}

// sessionKey builds the Redis key for a session id
func sessionKey(id string) string {
	return "session:" + id
}

// getRecord retrieves a session record from Redis and unmarshals it
func (m *Manager) getRecord(ctx context.Context, id string) (record, bool, error) {
	var rec record
	val, err := m.rdb.Get(ctx, sessionKey(id)).Result() // Get value from Redis
	if err == redis.Nil {
		return rec, false, nil // Key does not exist
	} else if err != nil {
		return rec, false, err // Other Redis error
	}
	return rec, true, json.Unmarshal([]byte(val), &rec) // Unmarshal JSON into rec
}

// setRecord stores a session record in Redis with the session TTL
func (m *Manager) setRecord(ctx context.Context, id string, rec record) error {
	b, err := json.Marshal(rec) // Marshal record to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return m.rdb.Set(ctx, sessionKey(id), b, m.ttl).Err() // Set value in Redis with TTL
}
