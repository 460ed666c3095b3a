package server

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/sonicdash/sonic/internal/theme"
	"github.com/sonicdash/sonic/internal/themeswitch"
)

// pageTheme holds the render-time style values for one page. Every field is
// built from resolver output, which only carries validated color tokens and
// escaped url() literals.
type pageTheme struct {
	Profile  string
	RootVars template.CSS
	Body     template.CSS
	TitleBar template.CSS
	SideBar  template.CSS
}

type themeSwatch struct {
	Region theme.Region
	Style  template.CSS
}

type themeOption struct {
	ID       string
	Active   bool
	Swatches []themeSwatch
}

type pageData struct {
	Title    string
	Slot     string
	Nav      []navItem
	Theme    pageTheme
	Options  []themeOption
	Endpoint string
}

func (s *stateStore) pageTheme(res theme.Resolved) pageTheme {
	decl := func(r theme.Region) template.CSS {
		return template.CSS(res.Get(r).Declaration(s.assets))
	}
	return pageTheme{
		Profile:  res.Profile,
		RootVars: template.CSS(theme.CustomProperties(res, s.assets)),
		Body:     decl(theme.RegionWallpaper),
		TitleBar: decl(theme.RegionTitleBar),
		SideBar:  decl(theme.RegionSideBar),
	}
}

func (s *stateStore) shellPageHandler(target navTarget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := s.loadTheme(r.Context())
		s.renderPage(w, "page", pageData{
			Title: target.Label,
			Slot:  target.ID,
			Nav:   navItems(target.ID),
			Theme: s.pageTheme(theme.Resolve(&cfg)),
		})
	}
}

func (s *stateStore) themeOptionsHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadTheme(r.Context())
	res := theme.Resolve(&cfg)
	data := pageData{
		Title:    "Theme",
		Slot:     "theme",
		Nav:      navItems(""),
		Theme:    s.pageTheme(res),
		Endpoint: themeswitch.DefaultEndpoint,
	}
	for _, id := range cfg.ProfileIDs() {
		preview := theme.ResolveProfile(&cfg, id)
		opt := themeOption{ID: id, Active: res.Found && id == res.Profile}
		for _, v := range preview.All() {
			opt.Swatches = append(opt.Swatches, themeSwatch{
				Region: v.Region,
				Style:  template.CSS(v.Declaration(s.assets)),
			})
		}
		data.Options = append(data.Options, opt)
	}
	s.renderPage(w, "theme", data)
}

func (s *stateStore) renderPage(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("render page", "page", name, "error", err)
		http.Error(w, "render page failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func themeSwitchScriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write([]byte(themeSwitchJS))
}
