package handler

import (
	"net/http"

	"biblenow/internal/pkg/resp"
)

// ManifestIcon is one entry of the web app manifest icon list.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Manifest is the installable web app manifest served at /manifest.json.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// StudioManifest is the fixed manifest of the studio web app.
var StudioManifest = Manifest{
	Name:            "BibleNOW Studio",
	ShortName:       "BibleNOW",
	Description:     "Livestream ministry, worship and Bible study with your community.",
	StartURL:        "/",
	Display:         "standalone",
	BackgroundColor: "#0b0b14",
	ThemeColor:      "#6d28d9",
	Icons: []ManifestIcon{
		{Src: "/icons/icon-192.png", Sizes: "192x192", Type: "image/png"},
		{Src: "/icons/icon-512.png", Sizes: "512x512", Type: "image/png"},
		{Src: "/icons/maskable-512.png", Sizes: "512x512", Type: "image/png", Purpose: "maskable"},
	},
}

// HandleManifest serves StudioManifest. The manifest is public and cacheable for an hour.
func HandleManifest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		resp.RespondSuccess(w, r, StudioManifest)
	}
}
