// Package middleware provides the handler.Middleware set used by the web
// application: request ids, request logging, body limits, security headers,
// language negotiation, session loading and route guards.
//
// Every middleware is generic over the handler context type and follows the
// same shape: a default constructor, a WithConfig constructor and, where a
// value is stored, a getter.
//
//	r := router.New[*web.Context]()
//	r.Use(
//		middleware.RequestID[*web.Context](),
//		middleware.Logging[*web.Context](log),
//		middleware.Session[*web.Context, account.User](transport, log),
//	)
//	r.Group(func(r router.Router[*web.Context]) {
//		r.Use(middleware.RequireAuth[*web.Context, account.User]())
//		r.Get("/dashboard", h.Dashboard)
//	})
//
// Handlers that log a user in or out replace the request's session with
// SetSession; Session stores whatever session is in the context once the
// handler returns.
package middleware
