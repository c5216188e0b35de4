// Package middleware contains the Fiber middleware of the corpus server.
//
// # Components
//
//   - auth: Rejects requests without the configured X-API-Key header (or api_key
//     query parameter). An empty key leaves the API open.
//   - rayid: Tags every request with a ray ID, reusing an incoming X-Ray-ID header,
//     and stores it under the "ray_id" local for logger.WithRayID.
//
// cmd/serve.go registers rayid first, then request logging, then auth, so rejected
// requests are still traced.
package middleware
