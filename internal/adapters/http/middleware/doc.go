// Package middleware holds the inbound request pipeline of the board API.
//
// Router order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// OpenTelemetry and Logging read the chi route pattern after the handler
// returns, so they must be mounted with chi's Use rather than wrapped
// around the router.
package middleware
