package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChatWidgetInline(t *testing.T) {
	html, err := RenderChatWidget(InlineChatConfig())
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, `id="support-log"`)
	assert.Contains(t, s, `id="support-text"`)
	assert.Contains(t, s, `id="support-send"`)
	assert.Contains(t, s, `"endpoint":"/api/support"`)
	assert.Contains(t, s, "initChat(")
	assert.NotContains(t, s, "chat-fab")
	assert.NotContains(t, s, "chat-drawer")
}

func TestRenderChatWidgetDrawer(t *testing.T) {
	html, err := RenderChatWidget(DrawerChatConfig())
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, `id="chat-fab"`)
	assert.Contains(t, s, `id="chat-drawer"`)
	assert.Contains(t, s, `id="chat-close"`)
	assert.Contains(t, s, `id="chat-log"`)
	assert.Contains(t, s, `id="chat-input"`)
	assert.Contains(t, s, `id="chat-send"`)
	assert.Contains(t, s, `"variant":"drawer"`)
}

func TestChatConfigsShareEndpoint(t *testing.T) {
	assert.Equal(t, InlineChatConfig().Endpoint, DrawerChatConfig().Endpoint)
}
