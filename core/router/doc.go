// Package router registers typed handlers (handler.HandlerFunc[C]) on top of
// gorilla/mux. It builds the request context through a factory, runs
// middlewares, executes the returned response, and sends errors and recovered
// panics to a single error handler.
//
//	r := router.New[*web.Context](
//		router.WithContextFactory(web.NewContext),
//		router.WithErrorHandler(web.ErrorHandler(log)),
//		router.WithMiddleware(middleware.RequestID[*web.Context]()),
//	)
//	r.Group(func(public router.Router[*web.Context]) {
//		public.Use(middleware.Guard[*web.Context, account.User](guard.Public))
//		public.Get("/login", loginPage)
//	})
//	r.NotFound(func(*web.Context) handler.Response { return response.Redirect("/login") })
//
// Middlewares must be registered with Use before routes on the same router.
// Groups copy the parent's middlewares at creation time.
package router
