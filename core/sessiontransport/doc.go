// Package sessiontransport moves session tokens over HTTP.
//
// Cookie stores Session.Token as a signed cookie. Load never fails on a bad
// cookie: a missing, tampered or unknown token simply starts a new anonymous
// session. Store writes the cookie only when the browser needs the new value.
//
//	store := session.NewMemoryStore[account.User]()
//	mgr := session.NewManager(store)
//	cookies, _ := cookie.New([]string{secret})
//	transport := sessiontransport.NewCookie(mgr, cookies, "__session")
//
//	sess, err := transport.Load(ctx)
//	sess, err = transport.Authenticate(ctx, sess, user)
//	err = transport.Store(ctx, sess)
//
// Use it together with middleware.Session, which loads the session before the
// handler and stores whatever session the handler left in the context.
package sessiontransport
