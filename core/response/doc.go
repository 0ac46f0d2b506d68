// Package response builds handler.Response values: plain text, templ
// components, redirects (htmx aware) and structured HTTP errors.
//
//	func loginPage(ctx *web.Context) handler.Response {
//		return response.Templ(view.LoginPage(ctx.T(), form.NewLogin().State()))
//	}
//
// Returning response.Error(err) hands err to the router's error handler,
// which converts it with AsHTTPError.
package response
