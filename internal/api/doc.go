// Package api provides the HTTP handlers exposing the application state
// facade to presentation layers. Handlers translate requests into facade
// operations and domain entities into JSON responses; they hold no state
// of their own.
package api
