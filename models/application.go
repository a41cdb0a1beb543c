// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Application is one membership request. The embedded [Credential] holds
// the login and password material; Approved gates member login.
type Application struct {
	ID string `json:"id"`
	Credential
	Email     string `json:"email"`
	Skill     string `json:"skill"`
	Level     string `json:"level"`
	Goal      string `json:"goal"`
	Concerns  string `json:"concerns"`
	Approved  bool   `json:"approved"`
	Plan      Plan   `json:"plan"`
	CreatedAt int64  `json:"created_at"`
}

// FindApplication returns a pointer to the element of apps whose username
// matches username case-insensitively (surrounding whitespace ignored), or
// nil. The pointer aliases the slice so callers can mutate in place.
func FindApplication(apps []Application, username string) *Application {
	target := strings.ToLower(strings.TrimSpace(username))
	for i := range apps {
		if strings.ToLower(strings.TrimSpace(apps[i].Username)) == target {
			return &apps[i]
		}
	}
	return nil
}

// EnsureApplicationFields migrates raw application records, as decoded from
// the applications document, into typed records. It adds a missing
// "approved" (false), coerces a non-boolean "approved" by JSON truthiness,
// adds missing "goal" and "concerns" and normalizes "plan" to the 4x7
// shape. changed reports whether any record needed one of these fixes, in
// which case the caller is expected to persist the result once.
//
// The function is idempotent: feeding the re-encoded output back in yields
// the same records and changed == false.
func EnsureApplicationFields(records []map[string]any) (apps []Application, changed bool) {
	apps = make([]Application, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			rec = map[string]any{}
		}

		approved, ok := rec["approved"].(bool)
		if !ok {
			approved = truthy(rec["approved"])
			changed = true
		}

		if _, ok := rec["goal"]; !ok {
			changed = true
		}
		if _, ok := rec["concerns"]; !ok {
			changed = true
		}

		plan := NormalizePlan(rec["plan"])
		if !reflect.DeepEqual(rec["plan"], plan.value()) {
			changed = true
		}

		apps = append(apps, Application{
			ID: stringify(rec["id"]),
			Credential: Credential{
				Username: stringify(rec["username"]),
				Salt:     stringify(rec["salt"]),
				Hash:     stringify(rec["hash"]),
			},
			Email:     stringify(rec["email"]),
			Skill:     stringify(rec["skill"]),
			Level:     stringify(rec["level"]),
			Goal:      stringify(rec["goal"]),
			Concerns:  stringify(rec["concerns"]),
			Approved:  approved,
			Plan:      plan,
			CreatedAt: int64Value(rec["created_at"]),
		})
	}
	return apps, changed
}

// truthy mirrors JSON truthiness: null, false, 0, "" and empty containers
// are false, everything else is true.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}

func int64Value(v any) int64 {
	switch value := v.(type) {
	case float64:
		return int64(value)
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			f, _ := value.Float64()
			return int64(f)
		}
		return n
	default:
		return 0
	}
}
