package webui

import (
	"bytes"
	"html/template"
	"io"
)

const baseCSS = `
* { box-sizing: border-box; margin: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  background: #f4f6f8; color: #1a1a1a; line-height: 1.5; }
.topbar { display: flex; align-items: center; justify-content: space-between;
  background: #15314b; color: #fff; padding: 12px 24px; }
.topbar a { color: #9fc3e8; text-decoration: none; margin-left: 16px; }
.container { max-width: 1100px; margin: 24px auto; padding: 0 16px; }
.panel { background: #fff; border-radius: 8px; padding: 20px; margin-bottom: 24px;
  box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
.panel h2 { margin-bottom: 12px; font-size: 1.2rem; }
#map { width: 100%; height: 420px; border-radius: 8px; }
.device-card { display: flex; align-items: center; justify-content: space-between;
  border: 1px solid #e2e6ea; border-radius: 6px; padding: 10px 14px; margin-bottom: 8px; }
.device-meta span { margin-right: 12px; }
.device-name { font-weight: 600; }
.device-type, .device-location { color: #667; font-size: 0.9rem; }
.toggle-btn { border: 0; border-radius: 5px; padding: 6px 14px; cursor: pointer; color: #fff; }
.toggle-btn.on { background: #198754; }
.toggle-btn.off { background: #6c757d; }
.users-table { width: 100%; border-collapse: collapse; }
.users-table th, .users-table td { text-align: left; padding: 6px 10px;
  border-bottom: 1px solid #e2e6ea; }
.pick-btn { border: 1px solid #0d6efd; background: #fff; color: #0d6efd;
  border-radius: 4px; padding: 2px 10px; cursor: pointer; }
form.admin-form { display: grid; gap: 8px; max-width: 420px; }
form.admin-form input, form.admin-form select { padding: 6px 8px;
  border: 1px solid #ccd; border-radius: 4px; }
form.admin-form button { padding: 8px; border: 0; border-radius: 5px;
  background: #0d6efd; color: #fff; cursor: pointer; }
.chat-panel { display: flex; flex-direction: column; height: 320px; }
.chat-log { flex: 1; overflow-y: auto; padding: 8px; background: #f8f9fb;
  border: 1px solid #e2e6ea; border-radius: 6px; margin-bottom: 8px; }
.bubble { max-width: 85%; margin-bottom: 6px; padding: 6px 10px; border-radius: 10px;
  white-space: pre-wrap; word-break: break-word; }
.bubble.me { background: #d7e8ff; margin-left: auto; }
.bubble.bot { background: #e9ecef; }
.bubble.pending { color: #667; font-style: italic; }
.chat-input-row { display: flex; gap: 8px; }
.chat-input-row input { flex: 1; padding: 6px 8px; border: 1px solid #ccd; border-radius: 4px; }
.chat-input-row button { border: 0; border-radius: 5px; background: #0d6efd;
  color: #fff; padding: 6px 14px; cursor: pointer; }
.chat-fab { position: fixed; right: 24px; bottom: 24px; width: 52px; height: 52px;
  border-radius: 50%; border: 0; background: #0d6efd; color: #fff; font-size: 1.4rem;
  cursor: pointer; box-shadow: 0 2px 8px rgba(0,0,0,0.25); }
.chat-drawer { position: fixed; right: 24px; bottom: 24px; width: 340px;
  background: #fff; border-radius: 10px; box-shadow: 0 4px 16px rgba(0,0,0,0.25);
  padding: 12px; display: flex; flex-direction: column; height: 420px; }
.chat-header { display: flex; justify-content: space-between; font-weight: 600;
  margin-bottom: 8px; }
.chat-close { border: 0; background: none; font-size: 1.2rem; cursor: pointer; }
.error { color: #dc3545; }
.loading, .empty { color: #667; }
.login-box { max-width: 360px; margin: 80px auto; }
`

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - Facility Hub</title>
{{if .IncludeMap}}<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
{{end}}<style>{{.CSS}}</style>
<script>{{.Script}}</script>
</head>
<body>
<div class="topbar">
  <strong>Facility Hub</strong>
  <div>
    {{if .UserName}}<span>{{.UserName}}</span>{{end}}
    {{if .Superuser}}<a href="/admin">Admin</a>{{end}}
    {{if .UserName}}<a href="/">Dashboard</a><a href="/logout">Logout</a>{{else}}<a href="/login">Login</a>{{end}}
  </div>
</div>
<div class="container">
{{.Body}}
</div>
</body>
</html>`))

var dashboardBodyTmpl = template.Must(template.New("dashboard").Parse(`<div class="panel">
  <h2>Locations</h2>
  <div id="map"></div>
  <script>initMap({{.MarkersJSON}});</script>
</div>
<div class="panel">
  <h2>Devices</h2>
  <div id="device-list"><p class="loading">Loading devices&hellip;</p></div>
</div>
<div class="panel">
  <h2>Support</h2>
  {{.ChatWidget}}
</div>`))

var adminBodyTmpl = template.Must(template.New("admin").Parse(`<div class="panel">
  <h2>Create Location</h2>
  <form id="create-location-form" class="admin-form">
    <input name="name" placeholder="Name" required>
    <input name="country" placeholder="Country" required>
    <input name="lat" type="number" step="any" placeholder="Latitude" required>
    <input name="lon" type="number" step="any" placeholder="Longitude" required>
    <button type="submit">Create location</button>
  </form>
</div>
<div class="panel">
  <h2>Create Device</h2>
  <form id="create-device-form" class="admin-form">
    <input name="name" placeholder="Name" required>
    <select name="type" required>
      <option value="light">light</option>
      <option value="pump">pump</option>
    </select>
    <input id="device_location_id" name="location_id" type="number" placeholder="Location ID" required>
    <button type="submit">Create device</button>
  </form>
</div>
<div class="panel">
  <h2>Assign User to Location</h2>
  <form id="assign-user-form" class="admin-form">
    <input id="assign_user_id" name="user_id" type="number" placeholder="User ID" required>
    <input id="assign_location_id" name="location_id" type="number" placeholder="Location ID" required>
    <button type="submit">Assign</button>
  </form>
</div>
<div class="panel">
  <h2>Users</h2>
  <input id="user-search" placeholder="Filter by id, name or email">
  <div id="users"></div>
</div>
{{.ChatWidget}}`))

var loginBodyTmpl = template.Must(template.New("login").Parse(`<div class="panel login-box">
  <h2>Sign in</h2>
  <form id="login-form" class="admin-form">
    <input name="email" type="email" placeholder="Email" required>
    <input name="password" type="password" placeholder="Password" required>
    <button type="submit">Sign in</button>
  </form>
</div>
<script>
bindForm('login-form', '/api/auth/login',
  (f) => ({email: f.get('email'), password: f.get('password')}),
  () => { location.href = '/'; });
</script>`))

type pageData struct {
	Title      string
	UserName   string
	Superuser  bool
	IncludeMap bool
	CSS        template.CSS
	Script     template.JS
	Body       template.HTML
}

// DashboardData feeds the dashboard page render.
type DashboardData struct {
	UserName    string
	Superuser   bool
	MarkersJSON template.JS
}

// WriteDashboard renders the full dashboard page.
func WriteDashboard(w io.Writer, data DashboardData) error {
	chat, err := RenderChatWidget(InlineChatConfig())
	if err != nil {
		return err
	}

	body, err := renderHTML(dashboardBodyTmpl, struct {
		MarkersJSON template.JS
		ChatWidget  template.HTML
	}{data.MarkersJSON, chat})
	if err != nil {
		return err
	}

	return pageTmpl.Execute(w, pageData{
		Title:      "Dashboard",
		UserName:   data.UserName,
		Superuser:  data.Superuser,
		IncludeMap: true,
		CSS:        template.CSS(baseCSS),
		Script:     appScript,
		Body:       body,
	})
}

// WriteAdmin renders the admin page.
func WriteAdmin(w io.Writer, userName string) error {
	chat, err := RenderChatWidget(DrawerChatConfig())
	if err != nil {
		return err
	}

	body, err := renderHTML(adminBodyTmpl, struct {
		ChatWidget template.HTML
	}{chat})
	if err != nil {
		return err
	}

	return pageTmpl.Execute(w, pageData{
		Title:     "Admin",
		UserName:  userName,
		Superuser: true,
		CSS:       template.CSS(baseCSS),
		Script:    appScript,
		Body:      body,
	})
}

// WriteLogin renders the login page.
func WriteLogin(w io.Writer) error {
	body, err := renderHTML(loginBodyTmpl, nil)
	if err != nil {
		return err
	}

	return pageTmpl.Execute(w, pageData{
		Title:  "Sign in",
		CSS:    template.CSS(baseCSS),
		Script: appScript,
		Body:   body,
	})
}

func renderHTML(t *template.Template, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
