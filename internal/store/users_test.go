package store

import (
	"testing"

	"feedback_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	created, err := RegisterUser(db, "alice", "s3cret-pw", "alice@example.com", "Alice", "Anderson")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	// The stored value is a hash, not the plaintext password
	assert.NotEqual(t, "s3cret-pw", created.Password)
	assert.NotEmpty(t, created.Password)

	// A freshly registered user can authenticate immediately
	got, err := Authenticate(db, "alice", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	mustRegister(t, db, "alice", "pw-one")
	require.Equal(t, int64(1), userCount(t, db))

	_, err := RegisterUser(db, "alice", "pw-two", "other@example.com", "Other", "Person")
	require.ErrorIs(t, err, ErrDuplicate)
	// No partial write: user count unchanged
	assert.Equal(t, int64(1), userCount(t, db))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	_, err := RegisterUser(db, "alice", "pw-one", "shared@example.com", "Alice", "Anderson")
	require.NoError(t, err)

	_, err = RegisterUser(db, "bob", "pw-two", "shared@example.com", "Bob", "Brown")
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, int64(1), userCount(t, db))
}

func TestAuthenticateFailures(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	mustRegister(t, db, "alice", "right-pw")

	// Wrong password and unknown username are indistinguishable to the caller
	_, err := Authenticate(db, "alice", "wrong-pw")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = Authenticate(db, "nobody", "right-pw")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestGetUserMissing(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	_, err := GetUser(db, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserCascade(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	mustRegister(t, db, "alice", "pw-a")
	mustRegister(t, db, "bob", "pw-b")

	f1, err := CreateFeedback(db, "alice", "from alice", "alice says hi")
	require.NoError(t, err)
	f2, err := CreateFeedback(db, "bob", "from bob", "bob says hi")
	require.NoError(t, err)

	require.NoError(t, DeleteUser(db, "alice"))

	// Alice and her feedback are gone
	_, err = GetUser(db, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetFeedback(db, f1.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Bob and his feedback are untouched
	_, err = GetUser(db, "bob")
	assert.NoError(t, err)
	got, err := GetFeedback(db, f2.ID)
	require.NoError(t, err)
	assert.Equal(t, "from bob", got.Title)

	var orphans int64
	require.NoError(t, db.Model(&domain.Feedback{}).Where("username = ?", "alice").Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestDeleteUserMissing(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	err := DeleteUser(db, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
