package server

import "html/template"

const shellHeadHTML = `{{define "head"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}} | Sonic</title>
  <style>
    :root { {{.Theme.RootVars}} }
` + uiShellChromeCSS + `
  </style>
{{end}}`

const shellFrameHTML = `{{define "frame-open"}}</head>
<body style="{{.Theme.Body}}" data-theme-active="{{.Theme.Profile}}">
  <header class="sonic-titlebar" style="{{.Theme.TitleBar}}">
    <span class="brand">Sonic</span>
    <a href="/theme" title="Theme">Theme</a>
  </header>
  <nav class="sonic-sidebar" style="{{.Theme.SideBar}}">
    {{- range .Nav}}
    <a href="{{.Path}}" data-nav-target="{{.ID}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
    {{- end}}
  </nav>
  <main class="sonic-content">
{{end}}
{{define "frame-close"}}  </main>
</body>
</html>
{{end}}`

const shellPageHTML = `{{define "page"}}{{template "head" .}}{{template "frame-open" .}}    <h1>{{.Title}}</h1>
    <section class="sonic-card" data-content-slot="{{.Slot}}"></section>
{{template "frame-close" .}}{{end}}`

const themeOptionsHTML = `{{define "theme"}}{{template "head" .}}  <style>
` + uiThemeOptionsCSS + `
  </style>
{{template "frame-open" .}}    <h1>Theme</h1>
    <section class="sonic-card">
      {{- if .Options}}
      <div class="sonic-theme-grid" data-theme-options>
        {{- range .Options}}
        <button type="button" class="sonic-theme-option" data-theme-profile="{{.ID}}" aria-pressed="{{.Active}}">
          <span class="name">{{.ID}}</span>
          <span class="sonic-swatches">
            {{- range .Swatches}}
            <span class="sonic-swatch" title="{{.Region}}" style="{{.Style}}"></span>
            {{- end}}
          </span>
        </button>
        {{- end}}
      </div>
      {{- else}}
      <p class="muted">No theme profiles are configured.</p>
      {{- end}}
    </section>
  <script src="/ui/theme-switch.js"></script>
  <script>initThemeSwitch(document, { endpoint: {{.Endpoint}}, active: {{.Theme.Profile}} });</script>
{{template "frame-close" .}}{{end}}`

func mustParsePages() *template.Template {
	return template.Must(template.New("pages").Parse(shellHeadHTML + shellFrameHTML + shellPageHTML + themeOptionsHTML))
}
