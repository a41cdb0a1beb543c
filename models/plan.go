// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	// PlanWeeks is the fixed number of weeks in every training plan.
	PlanWeeks = 4

	// PlanDays is the fixed number of day entries in every plan week.
	PlanDays = 7
)

// Plan is a per-member 4-week training schedule.
type Plan struct {
	Title string `json:"title"`
	Weeks []Week `json:"weeks"`
}

// Week is one week of a [Plan]: a title and exactly [PlanDays] day entries.
type Week struct {
	Title string   `json:"title"`
	Days  []string `json:"days"`
}

var defaultPlan = Plan{
	Title: "Plan 4 semanas - primera dominada",
	Weeks: []Week{
		{
			Title: "Semana 01 - Base y técnica",
			Days: []string{
				"Dead hang 4x20s + retracción escapular 3x10",
				"Remo invertido 4x8 + hollow hold 3x20s",
				"Asistidas con banda 5x5 + negativas 3x3 (5s)",
				"Movilidad de hombro y core 15 min",
				"Isométricos arriba 4x10s + asistidas 4x6",
				"Remo anillas 4x8 + curl bíceps 3x12",
				"Descanso activo, caminar 20-30 min",
			},
		},
		{
			Title: "Semana 02 - Fuerza inicial",
			Days: []string{
				"Dead hang 4x30s + retracción escapular 4x10",
				"Remo invertido 4x10 + plancha hollow 3x25s",
				"Asistidas banda ligera 5x4 + negativas 4x3",
				"Movilidad y activación de escápulas 15 min",
				"Isométricos mitad recorrido 4x8s + asistidas 4x5",
				"Remo supino 4x8 + curl bíceps 3x10",
				"Descanso activo",
			},
		},
		{
			Title: "Semana 03 - Control y potencia",
			Days: []string{
				"Asistidas 6x3 + negativas 4x3 (6s)",
				"Remo pesado 4x6 + hollow rocks 3x15",
				"Isométricos arriba 5x8s + clusters 1-1-1",
				"Movilidad y compensación de hombro",
				"Asistidas mínima ayuda 5x3 + negativas 3x2",
				"Remo anillas 4x6 + face pulls 3x12",
				"Descanso",
			},
		},
		{
			Title: "Semana 04 - Primer intento",
			Days: []string{
				"Test dominada + singles limpios 5x1",
				"Remo moderado 3x8 + core 3x20s",
				"Singles con pausa arriba 4x1 + negativas 2x2",
				"Movilidad y respiración",
				"Intentos controlados + series técnicas",
				"Trabajo ligero y estiramientos",
				"Descanso total",
			},
		},
	},
}

// DefaultPlan returns a deep copy of the plan assigned to new applications.
func DefaultPlan() Plan {
	return defaultPlan.Clone()
}

// Clone returns a deep copy of p.
func (p Plan) Clone() Plan {
	out := Plan{Title: p.Title}
	if p.Weeks != nil {
		out.Weeks = make([]Week, len(p.Weeks))
		for i, w := range p.Weeks {
			out.Weeks[i] = Week{Title: w.Title}
			if w.Days != nil {
				out.Weeks[i].Days = append([]string(nil), w.Days...)
			}
		}
	}
	return out
}

// Normalize returns p reshaped to exactly [PlanWeeks] weeks of [PlanDays]
// days, filling gaps from the default plan.
func (p Plan) Normalize() Plan {
	return NormalizePlan(p.value())
}

// WeekText joins the days of week i with newlines, as edited in the admin
// plan form. Out of range indexes yield "".
func (p Plan) WeekText(i int) string {
	if i < 0 || i >= len(p.Weeks) {
		return ""
	}
	return strings.Join(p.Weeks[i].Days, "\n")
}

// value converts p into the generic JSON shape accepted by [NormalizePlan].
func (p Plan) value() map[string]any {
	weeks := make([]any, 0, len(p.Weeks))
	for _, w := range p.Weeks {
		days := make([]any, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, d)
		}
		weeks = append(weeks, map[string]any{"title": w.Title, "days": days})
	}
	return map[string]any{"title": p.Title, "weeks": weeks}
}

// NormalizePlan builds a well-formed [Plan] out of an arbitrary decoded JSON
// value. Anything that is not an object yields the default plan. Missing or
// empty titles fall back to the default titles; day entries are stringified,
// trimmed and blank ones dropped; short weeks are back-filled from the
// default plan and long weeks truncated.
func NormalizePlan(v any) Plan {
	def := DefaultPlan()
	m, ok := v.(map[string]any)
	if !ok {
		return def
	}

	plan := Plan{
		Title: def.Title,
		Weeks: make([]Week, 0, PlanWeeks),
	}
	if title, ok := m["title"].(string); ok && title != "" {
		plan.Title = title
	}

	weeks, _ := m["weeks"].([]any)
	for i := 0; i < PlanWeeks; i++ {
		var src map[string]any
		if i < len(weeks) {
			src, _ = weeks[i].(map[string]any)
		}

		week := Week{Title: def.Weeks[i].Title}
		if title, ok := src["title"].(string); ok && title != "" {
			week.Title = title
		}

		days := make([]string, 0, PlanDays)
		if list, ok := src["days"].([]any); ok {
			for _, d := range list {
				if text := strings.TrimSpace(stringify(d)); text != "" {
					days = append(days, text)
				}
			}
		}
		week.Days = FillDays(days, def.Weeks[i].Days)

		plan.Weeks = append(plan.Weeks, week)
	}

	return plan
}

// FillDays pads days up to [PlanDays] entries with the matching positions of
// fallback and truncates anything beyond [PlanDays].
func FillDays(days, fallback []string) []string {
	out := append(make([]string, 0, PlanDays), days...)
	if len(out) < PlanDays && len(out) < len(fallback) {
		end := min(len(fallback), PlanDays)
		out = append(out, fallback[len(out):end]...)
	}
	if len(out) > PlanDays {
		out = out[:PlanDays]
	}
	return out
}

// stringify renders a decoded JSON scalar the way it reads in the document.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case json.Number:
		return value.String()
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
