// Package session tracks per-browser authentication state.
//
// A Session is created anonymous on the first request, becomes authenticated
// through Manager.Authenticate and returns to anonymous through Manager.Logout.
// Both operations rotate the session token while keeping the session ID, so a
// token observed before a login cannot be replayed after it.
//
//	store := session.NewMemoryStore[account.User]()
//	mgr := session.NewManager(store, session.WithTTL(24*time.Hour))
//
//	sess, err := mgr.New(ctx)
//	sess, err = mgr.Authenticate(ctx, sess, account.User{Email: "a@b.com"})
//	sess.IsAuthenticated() // true
//
// The token is moved over HTTP by the sessiontransport package. MemoryStore
// keeps everything in process memory; a restart drops all sessions.
package session
