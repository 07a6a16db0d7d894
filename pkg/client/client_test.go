package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationsDecodesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/locations", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Dubai HQ","country":"UAE","lat":25.2048,"lon":55.2708,"device_count":5}]`))
	}))
	defer srv.Close()

	locs, err := New(srv.URL).Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, int64(1), locs[0].ID)
	assert.Equal(t, "Dubai HQ", locs[0].Name)
	assert.Equal(t, 5, locs[0].DeviceCount)
}

func TestToggleDevice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/device/5/toggle", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"device_id":5,"is_on":true}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).ToggleDevice(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, int64(5), res.DeviceID)
	assert.True(t, res.IsOn)
}

func TestLoginReturnsAuthorizedClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@example.com", body["email"])
			_, _ = w.Write([]byte(`{"ok":true,"auth":{"access_token":"tok-abc","refresh_token":"ref-xyz"}}`))
		case "/api/admin/users":
			assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"ok":true,"users":[{"id":1,"name":"Super Admin","email":"admin@example.com","is_superuser":true,"location_id":null}]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	authed, err := New(srv.URL).Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)

	users, err := authed.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsSuperuser)
	assert.Nil(t, users[0].LocationID)
}

func TestSupportSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/support", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Empty message"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Support(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Empty message")
}

func TestSupportReturnsAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"answer":"Pump 3 is currently off."}`))
	}))
	defer srv.Close()

	answer, err := New(srv.URL).Support(context.Background(), "is pump 3 on?")
	require.NoError(t, err)
	assert.Equal(t, "Pump 3 is currently off.", answer)
}
