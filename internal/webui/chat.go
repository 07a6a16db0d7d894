package webui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// ChatVariant selects the widget layout.
type ChatVariant string

const (
	// ChatInline renders a docked panel that is always visible.
	ChatInline ChatVariant = "inline"
	// ChatDrawer renders a floating action button that opens a collapsible
	// drawer.
	ChatDrawer ChatVariant = "drawer"
)

// ChatConfig parameterizes the single chat component. Both page layouts are
// the same contract against different element sets, so the ids are
// configuration rather than two copies of the widget.
type ChatConfig struct {
	Variant  ChatVariant `json:"variant"`
	LogID    string      `json:"logId"`
	InputID  string      `json:"inputId"`
	SendID   string      `json:"sendId"`
	FabID    string      `json:"fabId,omitempty"`
	CloseID  string      `json:"closeId,omitempty"`
	DrawerID string      `json:"drawerId,omitempty"`
	Endpoint string      `json:"endpoint"`
	Title    string      `json:"-"`
}

// InlineChatConfig is the docked support panel on the dashboard.
func InlineChatConfig() ChatConfig {
	return ChatConfig{
		Variant:  ChatInline,
		LogID:    "support-log",
		InputID:  "support-text",
		SendID:   "support-send",
		Endpoint: "/api/support",
		Title:    "Support",
	}
}

// DrawerChatConfig is the floating chat drawer on the admin page.
func DrawerChatConfig() ChatConfig {
	return ChatConfig{
		Variant:  ChatDrawer,
		LogID:    "chat-log",
		InputID:  "chat-input",
		SendID:   "chat-send",
		FabID:    "chat-fab",
		CloseID:  "chat-close",
		DrawerID: "chat-drawer",
		Endpoint: "/api/support",
		Title:    "Support",
	}
}

type chatWidgetData struct {
	ChatConfig
	ConfigJSON template.JS
}

var chatWidgetTmpl = template.Must(template.New("chat").Parse(`{{if eq .Variant "drawer"}}<button id="{{.FabID}}" class="chat-fab" title="{{.Title}}">&#128172;</button>
<div id="{{.DrawerID}}" class="chat-drawer" hidden>
  <div class="chat-header"><span>{{.Title}}</span><button id="{{.CloseID}}" class="chat-close">&times;</button></div>
  <div id="{{.LogID}}" class="chat-log"></div>
  <div class="chat-input-row">
    <input id="{{.InputID}}" type="text" placeholder="Ask a question...">
    <button id="{{.SendID}}">Send</button>
  </div>
</div>
{{else}}<div class="chat-panel">
  <div class="chat-header"><span>{{.Title}}</span></div>
  <div id="{{.LogID}}" class="chat-log"></div>
  <div class="chat-input-row">
    <input id="{{.InputID}}" type="text" placeholder="Ask a question...">
    <button id="{{.SendID}}">Send</button>
  </div>
</div>
{{end}}<script>initChat({{.ConfigJSON}});</script>`))

// RenderChatWidget renders the widget markup plus its init call.
func RenderChatWidget(cfg ChatConfig) (template.HTML, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat config: %w", err)
	}

	var buf bytes.Buffer
	if err := chatWidgetTmpl.Execute(&buf, chatWidgetData{ChatConfig: cfg, ConfigJSON: template.JS(raw)}); err != nil {
		return "", fmt.Errorf("failed to render chat widget: %w", err)
	}

	return template.HTML(buf.String()), nil
}
