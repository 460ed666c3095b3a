package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sonicdash/sonic/internal/server/httpx"
)

const defaultAssetPattern = "images/**/*.{png,jpg,jpeg,gif,webp,svg}"

type themeAssetView struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type themeAssetsResponse struct {
	Pattern string           `json:"pattern"`
	Assets  []themeAssetView `json:"assets"`
}

func (s *stateStore) themeAssetsHandler(w http.ResponseWriter, r *http.Request) {
	pattern := strings.TrimSpace(r.URL.Query().Get("pattern"))
	if pattern == "" {
		pattern = defaultAssetPattern
	}
	if !doublestar.ValidatePattern(pattern) || strings.HasPrefix(pattern, "/") || strings.Contains(pattern, "..") {
		http.Error(w, "invalid asset pattern", http.StatusBadRequest)
		return
	}
	paths, err := listStaticAssets(s.staticDir, pattern)
	if err != nil {
		slog.Error("list theme assets", "static_dir", s.staticDir, "pattern", pattern, "error", err)
		http.Error(w, "list assets failed", http.StatusInternalServerError)
		return
	}
	res := themeAssetsResponse{Pattern: pattern, Assets: make([]themeAssetView, 0, len(paths))}
	for _, p := range paths {
		res.Assets = append(res.Assets, themeAssetView{Path: p, URL: s.assets.AssetURL(p)})
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// listStaticAssets returns the slash-separated paths below staticDir that
// match pattern. A missing static directory has no assets.
func listStaticAssets(staticDir, pattern string) ([]string, error) {
	if strings.TrimSpace(staticDir) == "" {
		return nil, nil
	}
	if _, err := os.Stat(staticDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return doublestar.Glob(os.DirFS(staticDir), pattern, doublestar.WithFilesOnly())
}
