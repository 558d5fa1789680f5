// Package http implements the web shell: a server-rendered rendition of the
// client with the upload form at /upload and the chat form at /chat.
//
// Every other path renders the upload form with hero copy chosen by that
// path. Form posts are handled synchronously by the shared client services.
// Request tracing, access logging and response compression are handled by
// middleware in this package.
package http
