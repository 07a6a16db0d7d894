// Package client is a typed Go client for the facility-hub HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"facility-hub/pkg/httpx"
)

// Location mirrors the /api/locations entries.
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DeviceCount int     `json:"device_count"`
}

// Device mirrors the /api/devices entries.
type Device struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsOn       bool   `json:"is_on"`
	LocationID int64  `json:"location_id"`
}

// User mirrors the /api/admin/users entries.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	LocationID  *int64 `json:"location_id"`
}

// ToggleResult is the response of a device toggle.
type ToggleResult struct {
	OK       bool  `json:"ok"`
	DeviceID int64 `json:"device_id"`
	IsOn     bool  `json:"is_on"`
}

type authPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type loginResponse struct {
	OK   bool         `json:"ok"`
	Auth *authPayload `json:"auth"`
}

type usersResponse struct {
	OK    bool    `json:"ok"`
	Users []*User `json:"users"`
}

type supportResponse struct {
	OK     bool   `json:"ok"`
	Answer string `json:"answer"`
	Error  string `json:"error"`
}

type createdResponse struct {
	OK         bool  `json:"ok"`
	LocationID int64 `json:"location_id"`
	DeviceID   int64 `json:"device_id"`
}

// Client talks to one facility-hub instance.
type Client struct {
	http    *httpx.Client
	baseURL string
}

// New builds a client for the given base URL.
func New(baseURL string, opts ...httpx.Option) *Client {
	return &Client{
		http:    httpx.New(opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login authenticates and returns a client whose requests carry the issued
// bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Client, error) {
	var resp loginResponse
	err := c.http.Post(ctx, c.baseURL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Auth == nil {
		return nil, fmt.Errorf("login response carried no tokens")
	}

	return New(c.baseURL, httpx.WithHeader("Authorization", "Bearer "+resp.Auth.AccessToken)), nil
}

// Locations fetches the visible locations.
func (c *Client) Locations(ctx context.Context) ([]*Location, error) {
	var out []*Location
	if err := c.http.Get(ctx, c.baseURL+"/api/locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Devices fetches the visible devices.
func (c *Client) Devices(ctx context.Context) ([]*Device, error) {
	var out []*Device
	if err := c.http.Get(ctx, c.baseURL+"/api/devices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleDevice flips one device's state.
func (c *Client) ToggleDevice(ctx context.Context, deviceID int64) (*ToggleResult, error) {
	var out ToggleResult
	url := fmt.Sprintf("%s/api/device/%d/toggle", c.baseURL, deviceID)
	if err := c.http.Post(ctx, url, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLocation creates a location and returns its id.
func (c *Client) CreateLocation(ctx context.Context, name, country string, lat, lon float64) (int64, error) {
	var out createdResponse
	err := c.http.Post(ctx, c.baseURL+"/api/admin/create_location", map[string]interface{}{
		"name":    name,
		"country": country,
		"lat":     lat,
		"lon":     lon,
	}, &out)
	if err != nil {
		return 0, err
	}
	return out.LocationID, nil
}

// CreateDevice creates a device and returns its id.
func (c *Client) CreateDevice(ctx context.Context, name, deviceType string, locationID int64) (int64, error) {
	var out createdResponse
	err := c.http.Post(ctx, c.baseURL+"/api/admin/create_device", map[string]interface{}{
		"name":        name,
		"type":        deviceType,
		"location_id": locationID,
	}, &out)
	if err != nil {
		return 0, err
	}
	return out.DeviceID, nil
}

// AssignUserLocation anchors a user to a location.
func (c *Client) AssignUserLocation(ctx context.Context, userID, locationID int64) error {
	return c.http.Post(ctx, c.baseURL+"/api/admin/assign_user_location", map[string]int64{
		"user_id":     userID,
		"location_id": locationID,
	}, nil)
}

// Users fetches the admin user list.
func (c *Client) Users(ctx context.Context) ([]*User, error) {
	var resp usersResponse
	if err := c.http.Get(ctx, c.baseURL+"/api/admin/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Support asks the support assistant a question.
func (c *Client) Support(ctx context.Context, message string) (string, error) {
	var resp supportResponse
	err := c.http.Post(ctx, c.baseURL+"/api/support", map[string]string{"message": message}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.OK {
		return "", fmt.Errorf("support request failed: %s", resp.Error)
	}
	return resp.Answer, nil
}

// Health checks the service health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.http.FetchJSON(ctx, http.MethodGet, c.baseURL+"/health", nil, nil)
}
