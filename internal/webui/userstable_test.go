package webui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-hub/internal/usecase/user"
)

type fakeLister struct {
	users []*user.UserResponse
	calls int
}

func (f *fakeLister) ListUsers(ctx context.Context) ([]*user.UserResponse, error) {
	f.calls++
	return f.users, nil
}

func ptrInt64(v int64) *int64 { return &v }

func testUsers() []*user.UserResponse {
	return []*user.UserResponse{
		{ID: 1, Name: "Ann", Email: "ann@example.com", LocationID: ptrInt64(1)},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Super Admin", Email: "admin@example.com", IsSuperuser: true},
	}
}

func TestUserIndexFilterMatchesNameCaseInsensitive(t *testing.T) {
	lister := &fakeLister{users: testUsers()}
	idx := NewUserIndex(lister, "assign_user_id")
	_, err := idx.Load(context.Background())
	require.NoError(t, err)

	got := idx.Filter("AN")
	require.Len(t, got, 2)
	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, "Super Admin", got[1].Name)
}

func TestUserIndexFilterMatchesID(t *testing.T) {
	lister := &fakeLister{users: testUsers()}
	idx := NewUserIndex(lister, "assign_user_id")
	_, err := idx.Load(context.Background())
	require.NoError(t, err)

	got := idx.Filter("2")
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestUserIndexFilterEmptyQueryReturnsAll(t *testing.T) {
	lister := &fakeLister{users: testUsers()}
	idx := NewUserIndex(lister, "assign_user_id")
	_, err := idx.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, idx.Filter(""), 3)
	assert.Len(t, idx.Filter("   "), 3)
}

func TestUserIndexFilterNeverCallsLister(t *testing.T) {
	lister := &fakeLister{users: testUsers()}
	idx := NewUserIndex(lister, "assign_user_id")
	_, err := idx.Load(context.Background())
	require.NoError(t, err)

	for _, q := range []string{"", "ann", "2", "example.com", "nothing-matches"} {
		idx.Filter(q)
	}
	assert.Equal(t, 1, lister.calls)
}

func TestUserIndexLoadReplacesSnapshot(t *testing.T) {
	lister := &fakeLister{users: testUsers()}
	idx := NewUserIndex(lister, "assign_user_id")
	_, err := idx.Load(context.Background())
	require.NoError(t, err)

	lister.users = []*user.UserResponse{
		{ID: 9, Name: "Zed", Email: "zed@example.com"},
	}
	_, err = idx.Load(context.Background())
	require.NoError(t, err)

	got := idx.Filter("")
	require.Len(t, got, 1)
	assert.Equal(t, "Zed", got[0].Name)
	assert.Empty(t, idx.Filter("ann"))
}

func TestRenderUsersTableEscapesAndInjectsPickTarget(t *testing.T) {
	idx := NewUserIndex(&fakeLister{}, "assign_user_id")
	html, err := idx.RenderUsersTable([]*user.UserResponse{
		{ID: 7, Name: "<script>alert(1)</script>", Email: "x@example.com"},
	})
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "&lt;script&gt;")
	assert.NotContains(t, s, "<script>alert")
	assert.Contains(t, s, `data-user-id="7"`)
	assert.Contains(t, s, `data-pick-target="assign_user_id"`)
}

func TestRenderUsersTableEmpty(t *testing.T) {
	idx := NewUserIndex(&fakeLister{}, "assign_user_id")
	html, err := idx.RenderUsersTable(nil)
	require.NoError(t, err)
	assert.Contains(t, string(html), "No users match.")
}
