// Package form implements the login and registration form controllers.
//
// A Controller is created per request. GET mounts an empty form with New;
// edit and submit requests restore the posted form with FromRequest, which
// also reads the hidden error markers so that editing a field clears only
// that field's error:
//
//	c, field, err := form.FromRequest(form.Login, tr, r)
//	c.Edit(field, c.Value(field))
//
// Submit recomputes every error from scratch and runs the action only when
// the form is valid. A failed action is reported as one banner message.
package form
