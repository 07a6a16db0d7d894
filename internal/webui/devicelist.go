package webui

import (
	"bytes"
	"fmt"
	"html/template"

	"facility-hub/internal/usecase/device"
)

// deviceCard is one rendered entry in the device list fragment.
type deviceCard struct {
	ID       int64
	Name     string
	Type     string
	Location string
	IsOn     bool
}

var deviceListTmpl = template.Must(template.New("devices").Parse(`{{if not .}}<p class="empty">No devices.</p>{{end}}{{range .}}<div class="device-card" data-device-id="{{.ID}}">
  <div class="device-meta">
    <span class="device-name">#{{.ID}} {{.Name}}</span>
    <span class="device-type">{{.Type}}</span>
    <span class="device-location">{{.Location}}</span>
  </div>
  <button class="toggle-btn {{if .IsOn}}on{{else}}off{{end}}" data-id="{{.ID}}">{{if .IsOn}}Turn OFF{{else}}Turn ON{{end}}</button>
</div>
{{end}}`))

// RenderDeviceList renders the device cards fragment. locationName maps a
// location id to its display name; unknown ids fall back to the raw id.
func RenderDeviceList(devices []*device.DeviceResponse, locationName func(int64) string) (template.HTML, error) {
	cards := make([]deviceCard, 0, len(devices))
	for _, d := range devices {
		loc := fmt.Sprintf("location %d", d.LocationID)
		if locationName != nil {
			if name := locationName(d.LocationID); name != "" {
				loc = name
			}
		}
		cards = append(cards, deviceCard{
			ID:       d.ID,
			Name:     d.Name,
			Type:     d.Type,
			Location: loc,
			IsOn:     d.IsOn,
		})
	}

	var buf bytes.Buffer
	if err := deviceListTmpl.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("failed to render device list: %w", err)
	}

	return template.HTML(buf.String()), nil
}
