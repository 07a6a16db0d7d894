package webui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"facility-hub/internal/usecase/location"
)

// EmptyMarkersJSON renders a map with no pins.
const EmptyMarkersJSON = template.JS("[]")

// Marker is one map pin with its popup HTML, ready for the Leaflet bootstrap
// script. Popup content is escaped here so the page script can hand it to the
// map library verbatim.
type Marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
}

var popupTmpl = template.Must(template.New("popup").Parse(
	`<b>{{.Name}}</b> ({{.Country}})<br>Devices: {{.DeviceCount}}`))

// BuildMarkers converts locations into map markers.
func BuildMarkers(locations []*location.LocationResponse) ([]Marker, error) {
	markers := make([]Marker, 0, len(locations))
	for _, loc := range locations {
		var buf bytes.Buffer
		if err := popupTmpl.Execute(&buf, loc); err != nil {
			return nil, fmt.Errorf("failed to render popup for %d: %w", loc.ID, err)
		}
		markers = append(markers, Marker{
			Lat:   loc.Lat,
			Lon:   loc.Lon,
			Popup: buf.String(),
		})
	}
	return markers, nil
}

// MarkersJSON encodes markers for embedding into the page script.
func MarkersJSON(markers []Marker) (template.JS, error) {
	raw, err := json.Marshal(markers)
	if err != nil {
		return "", fmt.Errorf("failed to encode markers: %w", err)
	}
	return template.JS(raw), nil
}
