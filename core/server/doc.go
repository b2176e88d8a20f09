// Package server holds the HTTP server configuration and boundary handlers.
//
// While the webserver command handles the server startup, this package
// defines the configuration structure (bind address, optional TLS files)
// and the two handlers that sit at the edge of the route table:
//
//   - NotFoundHandler: the fallback for unmatched routes, returning a 404
//     JSON body naming the requested path.
//   - ErrorHandler: the single point where internal failures become 500
//     responses; the server keeps running.
//
// # TLS
//
// TLS is activated only when both ssl_cert and ssl_key are configured and
// readable. Otherwise the server listens on plain HTTP.
package server
