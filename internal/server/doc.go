// Package server runs the portal's HTTP server and shuts it down
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
