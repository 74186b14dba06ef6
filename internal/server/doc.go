// Package server provides HTTP routing, middleware, and an in-memory development catalog.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses gorilla/mux internally with method matching and an optional path prefix.
//
// # Development Catalog
//
// [CatalogHandler] implements the collection service contract (GET /songs, POST /create) in memory so the client
// can be run and tested without the real backend. The dev-server command mounts it with [NewCatalogRouter] under the
// configured prefix, which matches the default client base URL.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface and list their routes, keeping route definitions within the
// implementation.
package server
