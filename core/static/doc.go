// Package static serves embedded assets such as stylesheets.
//
// FS returns a handler.HandlerFunc for any fs.FS. Directory listings are
// disabled and files get a Cache-Control header:
//
//	//go:embed assets
//	var assets embed.FS
//
//	r.Get("/static/{file:.+}", static.FS[*Context](assets,
//		static.WithSubFS("assets"),
//		static.WithFSStripPrefix("/static"),
//		static.WithCacheControl("public, max-age=3600"),
//	))
package static
