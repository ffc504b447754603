// Package http contains the inbound HTTP surface of the linkup backend:
// the chi router, the per-route handlers, and the middleware chain
// (trace-id propagation, request logging, panic recovery).
//
// Handlers validate nothing beyond JSON well-formedness; field-level
// validation lives in the service layer, and every service failure is
// translated to a JSON error body through the error-status map.
package http
