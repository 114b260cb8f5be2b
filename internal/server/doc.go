// Package server exposes the numeric adapter over HTTP.
//
// Endpoints (GET only):
//
//	/health            liveness probe
//	/convert?value=&base=   decimal value to digits in base (default: alternate base)
//	/or?a=&b=          bitwise OR of two decimal values, in the primary base
//	/sort?value=&order=asc|desc
//	/metrics           Prometheus text format
//
// Every response carries the security headers of SecurityMiddleware.
package server
