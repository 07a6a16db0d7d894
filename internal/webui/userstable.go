package webui

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"sync"

	"facility-hub/internal/usecase/user"
)

// UserLister supplies the full user list for the admin table.
type UserLister interface {
	ListUsers(ctx context.Context) ([]*user.UserResponse, error)
}

// UserIndex owns the admin table's user cache. Load replaces the snapshot
// wholesale; Filter only reads the last loaded snapshot and never reaches
// back to the lister, so typing in the search box costs no queries.
type UserIndex struct {
	lister UserLister

	// PickTargetID is the form input the table's Pick buttons write into.
	// Injected so the table stays decoupled from the form that owns it.
	pickTargetID string

	mu    sync.RWMutex
	cache []*user.UserResponse
}

// NewUserIndex creates an index backed by the given lister.
func NewUserIndex(lister UserLister, pickTargetID string) *UserIndex {
	return &UserIndex{
		lister:       lister,
		pickTargetID: pickTargetID,
	}
}

// Load refreshes the cache from the lister, replacing any previous snapshot.
func (idx *UserIndex) Load(ctx context.Context) ([]*user.UserResponse, error) {
	users, err := idx.lister.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	idx.mu.Lock()
	idx.cache = users
	idx.mu.Unlock()

	return users, nil
}

// Filter derives a view from the cached snapshot by case-insensitive
// substring match against the stringified id, name or email. An empty query
// returns the full snapshot.
func (idx *UserIndex) Filter(query string) []*user.UserResponse {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]*user.UserResponse(nil), idx.cache...)
	}

	var out []*user.UserResponse
	for _, u := range idx.cache {
		if strings.Contains(strconv.FormatInt(u.ID, 10), query) ||
			strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Email), query) {
			out = append(out, u)
		}
	}

	return out
}

type usersTableData struct {
	Users        []*user.UserResponse
	PickTargetID string
}

var usersTableTmpl = template.Must(template.New("users").Parse(`<table class="users-table">
<thead><tr><th>ID</th><th>Name</th><th>Email</th><th>Role</th><th>Location</th><th></th></tr></thead>
<tbody>
{{$pick := .PickTargetID}}{{range .Users}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Name}}</td>
  <td>{{.Email}}</td>
  <td>{{if .IsSuperuser}}superuser{{else}}local{{end}}</td>
  <td>{{if .LocationID}}{{.LocationID}}{{else}}&mdash;{{end}}</td>
  <td><button class="pick-btn" data-user-id="{{.ID}}" data-pick-target="{{$pick}}">Pick</button></td>
</tr>
{{else}}<tr><td colspan="6" class="empty">No users match.</td></tr>
{{end}}</tbody>
</table>`))

// RenderUsersTable renders the table fragment for the given view of users.
func (idx *UserIndex) RenderUsersTable(users []*user.UserResponse) (template.HTML, error) {
	var buf bytes.Buffer
	err := usersTableTmpl.Execute(&buf, usersTableData{
		Users:        users,
		PickTargetID: idx.pickTargetID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render users table: %w", err)
	}

	return template.HTML(buf.String()), nil
}
