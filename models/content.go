// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event is a public competition or meetup shown on the landing page.
// List order is display order.
type Event struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

// Video layouts understood by the gallery grid. The zero value is the
// normal tile.
const (
	LayoutTall = "tall"
	LayoutWide = "wide"
)

// Video is a gallery entry. It plays either a stored upload (File) or a
// URL relative to the static root (VideoURL).
type Video struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Layout      string `json:"layout"`
	VideoURL    string `json:"video_url"`
	File        string `json:"file"`
}

// NormalizeLayout maps anything but a known layout to the normal tile.
func NormalizeLayout(layout string) string {
	switch layout {
	case LayoutTall, LayoutWide:
		return layout
	default:
		return ""
	}
}

// DefaultEvents returns the events seeded on first start.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          "evt_1",
			Date:        "16-19 ABR 2026",
			Location:    "Colonia, Alemania",
			Title:       "Calisthenics Cup 2026",
			Description: "FIBO Fitness Convention.",
			Tag:         "Europa",
		},
		{
			ID:          "evt_2",
			Date:        "MAR/ABR 2026",
			Location:    "Malaga, Espana",
			Title:       "Copa Malaga",
			Description: "Fecha prevista entre marzo y abril.",
			Tag:         "Nacional",
		},
		{
			ID:          "evt_3",
			Date:        "14-15 MAR 2026",
			Location:    "O Porto, Portugal",
			Title:       "Endurance Battles",
			Description: "Eagle Calisthenics.",
			Tag:         "Europa",
		},
	}
}

// DefaultVideos returns the gallery seeded on first start.
func DefaultVideos() []Video {
	return []Video{
		{ID: "vid_1", Tag: "Dominadas", Title: "Disciplina en la barra", Description: "Serie limpia con foco militar.", Layout: LayoutTall, VideoURL: "FOTOS/VIDEO DOMINADAS.MOV"},
		{ID: "vid_2", Tag: "Muscle up", Title: "Transición precisa", Description: "Explosivo y controlado.", Layout: LayoutWide, VideoURL: "FOTOS/VIDEO MUSCLE UP.MOV"},
		{ID: "vid_3", Tag: "Pino", Title: "Línea en silencio", Description: "Balance y respiración.", VideoURL: "FOTOS/VIDEO PINO.mov"},
		{ID: "vid_4", Tag: "Front lever", Title: "Horizonte quieto", Description: "Control total en estáticos.", Layout: LayoutTall, VideoURL: "FOTOS/video front LEVER.MOV"},
		{ID: "vid_5", Tag: "Fondos", Title: "Fondo profundo", Description: "Ritmo de resistencia brutal.", Layout: LayoutWide, VideoURL: "FOTOS/VIDEO FONDOS.mov"},
		{ID: "vid_6", Tag: "Back lever", Title: "Reversa total", Description: "Control posterior con aura.", VideoURL: "FOTOS/VIDEO BACK LEVER.MOV"},
	}
}
