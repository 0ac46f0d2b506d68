package view

import "embed"

// StylesheetPath is where the router mounts Assets.
const StylesheetPath = "/static/app.css"

// Assets holds the stylesheet under "assets/".
//
//go:embed assets
var Assets embed.FS
