// Package cookie sets and reads HTTP cookies, optionally signed with
// HMAC-SHA256 so the server can detect tampering.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		return err
//	}
//	_ = mgr.SetSigned(w, "__session", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetSigned(r, "__session")
//
// Several secrets may be given: the first one signs new cookies and every one
// of them is accepted when verifying, which allows key rotation.
//
// NewFromConfig builds a manager from Config, loaded from the environment
// (COOKIE_SECRETS is a comma-separated list).
package cookie
