// Package services defines the [Catalog] interface for the remote song collection and implements it over HTTP.
//
// # Catalog Interface
//
// The client side only ever lists and creates songs; the collection service owns filtering and ordering.
//
// # HTTP Implementation
//
// [CatalogService] issues one request per call with an optional per-request timeout
// and an optional [rate.Limiter] that spaces requests. It never retries.
//
// # Error Handling
//
// Failures are classified with sentinel errors from the shared package:
//   - [shared.ErrNetworkFailure] : the request never completed (transport error, timeout, cancellation)
//   - [shared.ErrServerFailure] : the service answered with a non-2xx status
//   - [shared.ErrMalformedResponse] : the body is not a JSON array of songs
package services
