// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers, and middleware for the two
// operations offered to the web front end: API key verification and link
// creative provisioning. Request tracing, access logging, metrics and
// response compression are handled here before requests are delegated to the
// service layer. Every JSON answer is a {success, message} envelope.
package http
