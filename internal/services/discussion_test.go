package services

import (
	"path/filepath"
	"testing"

	"parley/internal/db"
	"parley/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "parley.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := NewUserService(gdb).Create(username)
	require.NoError(t, err)
	return user
}

func strptr(s string) *string { return &s }

func TestUserCreateDuplicate(t *testing.T) {
	gdb := openTestDB(t)
	users := NewUserService(gdb)

	_, err := users.Create("alice")
	require.NoError(t, err)

	_, err = users.Create("alice")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestDiscussionCreateUnknownAuthor(t *testing.T) {
	gdb := openTestDB(t)
	discussions := NewDiscussionService(gdb)

	_, err := discussions.Create("t", "b", 42)
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	list, err := discussions.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDiscussionUpdatePartialFields(t *testing.T) {
	gdb := openTestDB(t)
	discussions := NewDiscussionService(gdb)
	author := seedUser(t, gdb, "alice")

	created, err := discussions.Create("Original title", "Original body", author.ID)
	require.NoError(t, err)

	updated, err := discussions.Update(created.ID, author.ID, DiscussionUpdate{Title: strptr("New title")})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Original body", updated.Body)

	// An empty update writes nothing and returns the row as-is
	updated, err = discussions.Update(created.ID, author.ID, DiscussionUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Original body", updated.Body)
}

func TestDiscussionUpdateByNonOwner(t *testing.T) {
	gdb := openTestDB(t)
	discussions := NewDiscussionService(gdb)
	owner := seedUser(t, gdb, "owner")
	intruder := seedUser(t, gdb, "intruder")

	created, err := discussions.Create("Mine", "Keep out", owner.ID)
	require.NoError(t, err)

	_, err = discussions.Update(created.ID, intruder.ID, DiscussionUpdate{Title: strptr("Hijacked")})
	assert.ErrorIs(t, err, ErrUnauthorized)

	reloaded, err := discussions.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", reloaded.Title)
}

func TestDiscussionSoftDelete(t *testing.T) {
	gdb := openTestDB(t)
	discussions := NewDiscussionService(gdb)
	author := seedUser(t, gdb, "alice")

	created, err := discussions.Create("Doomed", "soon gone", author.ID)
	require.NoError(t, err)

	require.NoError(t, discussions.SoftDelete(created.ID, author.ID))

	reloaded, err := discussions.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Deleted)
	require.NotNil(t, reloaded.DeletedAt)

	// Row retained in the listing
	list, err := discussions.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommentParentValidation(t *testing.T) {
	gdb := openTestDB(t)
	discussions := NewDiscussionService(gdb)
	comments := NewCommentService(gdb)
	author := seedUser(t, gdb, "alice")

	first, err := discussions.Create("First", "body", author.ID)
	require.NoError(t, err)
	second, err := discussions.Create("Second", "body", author.ID)
	require.NoError(t, err)

	top, err := comments.Create(first.ID, author.ID, "top", nil)
	require.NoError(t, err)
	require.Nil(t, top.ParentID)

	missing := uint(99999)
	_, err = comments.Create(first.ID, author.ID, "reply", &missing)
	assert.ErrorIs(t, err, ErrParentNotFound)

	_, err = comments.Create(second.ID, author.ID, "cross-thread", &top.ID)
	assert.ErrorIs(t, err, ErrParentMismatch)

	reply, err := comments.Create(first.ID, author.ID, "reply", &top.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, top.ID, *reply.ParentID)
}
