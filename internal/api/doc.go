// Package api handles incoming HTTP requests, request validation and
// response formatting for the quantity engine and the particle compiler. It
// translates HTTP concerns into engine operations and maps engine errors to
// status codes without leaking internal details.
package api
