package theme

import (
	"regexp"
	"strings"
)

type Kind string

const (
	KindColor Kind = "color"
	KindImage Kind = "image-url"
)

var defaultColors = [len(allRegions)]string{
	"#1f6feb", // primary
	"#6c757d", // secondary
	"#212529", // text
	"#343a40", // titleBar
	"#2c3e50", // sideBar
	"#f4f6f9", // wallpaper
}

// DefaultColor is the color a region falls back to when the selected profile
// does not style it. Unknown regions get the wallpaper default.
func DefaultColor(r Region) string {
	idx := r.index()
	if idx < 0 {
		return defaultColors[len(defaultColors)-1]
	}
	return defaultColors[idx]
}

// Value is one resolved region style. Exactly one of Color or Image is set,
// matching Kind.
type Value struct {
	Region  Region `json:"region"`
	Kind    Kind   `json:"kind"`
	Color   string `json:"color,omitempty"`
	Image   string `json:"image,omitempty"`
	Default bool   `json:"default"`
}

func (v Value) IsImage() bool { return v.Kind == KindImage }

type Resolved struct {
	Profile string
	Found   bool
	values  [len(allRegions)]Value
}

// Get returns the resolved value for r. Unknown regions resolve to the
// wallpaper default so callers never see a zero Value.
func (r Resolved) Get(region Region) Value {
	idx := region.index()
	if idx < 0 {
		return Value{Region: region, Kind: KindColor, Color: DefaultColor(region), Default: true}
	}
	return r.values[idx]
}

// All returns the resolved values in render order.
func (r Resolved) All() []Value {
	out := make([]Value, len(r.values))
	copy(out, r.values[:])
	return out
}

// Resolve computes the effective style of every region for the selected
// profile of cfg. A nil config, an empty or dangling selection, and missing
// region entries all degrade to the per-region defaults.
func Resolve(cfg *Config) Resolved {
	if cfg == nil {
		return ResolveProfile(nil, "")
	}
	return ResolveProfile(cfg, cfg.SelectedProfile)
}

// ResolveProfile is Resolve for an explicit profile id.
func ResolveProfile(cfg *Config, profileID string) Resolved {
	profile, found := cfg.Profile(profileID)
	out := Resolved{Profile: profileID, Found: found}
	for i, region := range allRegions {
		out.values[i] = resolveRegion(profile, found, region)
	}
	return out
}

func ResolveRegion(cfg *Config, profileID string, region Region) Value {
	profile, found := cfg.Profile(profileID)
	return resolveRegion(profile, found, region)
}

func resolveRegion(profile Profile, found bool, region Region) Value {
	if found {
		if style, ok := profile.Style(region); ok {
			if img := style.image(); img != "" && region.SupportsImage() {
				return Value{Region: region, Kind: KindImage, Image: img}
			}
			if c := style.color(); c != "" && ValidColor(c) {
				return Value{Region: region, Kind: KindColor, Color: c}
			}
		}
	}
	return Value{Region: region, Kind: KindColor, Color: DefaultColor(region), Default: true}
}

var (
	hexColorRE   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColorRE = regexp.MustCompile(`^[a-zA-Z]{3,32}$`)
	funcColorRE  = regexp.MustCompile(`^[a-z][a-z-]*\([-+0-9a-zA-Z.,%#\s/()_]*\)$`)
	funcNameRE   = regexp.MustCompile(`([a-zA-Z-]*)\(`)
)

var colorFuncs = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
	"lab": true, "lch": true, "oklab": true, "oklch": true,
	"color": true, "color-mix": true, "light-dark": true, "var": true,
}

// ValidColor reports whether s can be emitted as an unquoted CSS color token
// without breaking out of a declaration. Hex, named and functional colors
// are accepted; functional notation is limited to the CSS color functions
// (including color-mix, light-dark and var) and may nest them.
func ValidColor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 128 {
		return false
	}
	if hexColorRE.MatchString(s) || namedColorRE.MatchString(s) {
		return true
	}
	if !funcColorRE.MatchString(s) {
		return false
	}
	for _, m := range funcNameRE.FindAllStringSubmatch(s, -1) {
		if !colorFuncs[strings.ToLower(m[1])] {
			return false
		}
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 || (depth == 0 && i != len(s)-1) {
				return false
			}
		}
	}
	return depth == 0
}
