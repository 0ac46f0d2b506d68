// Package app assembles the portal from its configuration: logger, session
// store and manager, cookie transport, translations, router and HTTP server.
//
//	a, err := app.New()
//	if err != nil {
//		return err
//	}
//	return a.Run(ctx)
package app
