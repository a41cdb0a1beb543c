package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json".
//
// If marshaling fails it responds 500 and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ParseCookies splits a raw Cookie header on ";" and each part on its first
// "=". Keys and values are trimmed; parts without "=" are ignored. When a
// name repeats, the first occurrence wins.
//
// No unquoting or validation is applied, so values that net/http would
// reject (e.g. containing spaces or quotes) are still returned.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := cookies[key]; seen {
			continue
		}
		cookies[key] = strings.TrimSpace(value)
	}
	return cookies
}

// CookieValue returns the value of cookie name in header, or "" when absent.
func CookieValue(header, name string) string {
	if header == "" {
		return ""
	}
	return ParseCookies(header)[name]
}
