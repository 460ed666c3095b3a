package theme

import (
	"net/url"
	"path"
	"strings"
)

// AssetResolver turns an image reference from a profile into a servable URL.
type AssetResolver interface {
	AssetURL(ref string) string
}

type AssetResolverFunc func(ref string) string

func (f AssetResolverFunc) AssetURL(ref string) string { return f(ref) }

// StaticAssets maps relative asset paths below Prefix. Absolute URLs and
// rooted paths are returned unchanged.
type StaticAssets struct {
	Prefix string
}

func (a StaticAssets) AssetURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "/") || hasURLScheme(ref) {
		return ref
	}
	prefix := strings.TrimSpace(a.Prefix)
	if prefix == "" {
		prefix = "/static/"
	}
	prefix = "/" + strings.Trim(prefix, "/")
	clean := strings.TrimPrefix(path.Clean("/"+ref), "/")
	if trimmed := strings.TrimPrefix(prefix, "/") + "/"; strings.HasPrefix(clean, trimmed) {
		clean = strings.TrimPrefix(clean, trimmed)
	}
	return (&url.URL{Path: prefix + "/" + clean}).EscapedPath()
}

func hasURLScheme(ref string) bool {
	lower := strings.ToLower(ref)
	for _, scheme := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// CSSValue formats v as a CSS value: a bare color token, or a quoted url()
// literal for images.
func (v Value) CSSValue(assets AssetResolver) string {
	if v.IsImage() {
		ref := v.Image
		if assets != nil {
			ref = assets.AssetURL(ref)
		}
		return cssURL(ref)
	}
	return v.Color
}

// Declaration renders the background declaration for v, without a trailing
// semicolon.
func (v Value) Declaration(assets AssetResolver) string {
	if v.IsImage() {
		return "background-image: " + v.CSSValue(assets)
	}
	return "background-color: " + v.CSSValue(assets)
}

var customProperties = []struct {
	name   string
	region Region
}{
	{"--primary-color", RegionPrimary},
	{"--secondary-color", RegionSecondary},
	{"--text-color", RegionText},
}

// CustomProperties renders the root custom property block body for r.
func CustomProperties(r Resolved, assets AssetResolver) string {
	var b strings.Builder
	for i, p := range customProperties {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.name)
		b.WriteString(": ")
		b.WriteString(r.Get(p.region).CSSValue(assets))
		b.WriteByte(';')
	}
	return b.String()
}

var cssStringReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\a `,
	"\r", `\d `,
	"<", `\3c `,
	">", `\3e `,
)

func cssURL(ref string) string {
	return `url("` + cssStringReplacer.Replace(ref) + `")`
}
