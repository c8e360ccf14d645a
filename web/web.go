package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"strconv"
)

//go:embed static
var assets embed.FS

// Files serves the dashboard page. Set SHOPDASH_WEB_DIRECT to serve
// from the working tree instead of the embedded copy.
func Files() (http.Handler, error) {
	var f fs.FS
	if ok, _ := strconv.ParseBool(os.Getenv("SHOPDASH_WEB_DIRECT")); ok {
		f = os.DirFS("web/static")
	} else {
		rooted, err := fs.Sub(assets, "static")
		if err != nil {
			return nil, err
		}
		f = rooted
	}
	return http.FileServer(http.FS(f)), nil
}
