// Package guard decides whether a visitor may see a page.
//
// Guards are pure functions of the authentication flag. They return a
// Decision which the HTTP layer turns into either the page or a redirect:
//
//	if d := guard.Protected(sess.IsAuthenticated()); !d.Allowed() {
//		return response.Redirect(d.Location())
//	}
package guard
