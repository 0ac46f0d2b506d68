// Package handler defines the typed request-processing contract shared by the
// router, the middlewares and the application handlers.
//
// A handler receives a request context and returns a Response; rendering is
// deferred until the router executes the Response, so middlewares can decide
// to short-circuit (for example redirect) before anything is written:
//
//	func dashboard(ctx *web.Context) handler.Response {
//		sess := ctx.Session()
//		return response.Templ(view.Dashboard(sess.User))
//	}
//
// Middlewares compose with Chain; the first middleware is the outermost:
//
//	h := handler.Chain(dashboard, middleware.RequestID[*web.Context](), guard)
package handler
