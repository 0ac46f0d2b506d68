// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*web.Context])
//	r.Get("/health/ready", health.Readiness[*web.Context](log, sessions.Ping))
//
// Readiness checks have the signature func(context.Context) error.
package health
