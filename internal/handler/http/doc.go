// Package http implements the browser-facing transport of the portal.
//
// It renders the landing, admin and login pages from embedded templates,
// accepts the HTML form posts (applications, logins, admin edits, member
// submissions) and answers every post with a 303 redirect carrying a
// status in the query string. Session cookies are resolved here and
// handed to the service layer; request tracing, access logging, metrics,
// compression and timeouts are applied as chi middleware.
package http
