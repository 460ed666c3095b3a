// Package theme holds the persisted theme profile model and resolves the
// effective style of every dashboard region for the selected profile.
package theme

import (
	"slices"
	"strings"
)

type Region string

const (
	RegionPrimary   Region = "primary"
	RegionSecondary Region = "secondary"
	RegionText      Region = "text"
	RegionTitleBar  Region = "titleBar"
	RegionSideBar   Region = "sideBar"
	RegionWallpaper Region = "wallpaper"
)

var allRegions = [...]Region{
	RegionPrimary,
	RegionSecondary,
	RegionText,
	RegionTitleBar,
	RegionSideBar,
	RegionWallpaper,
}

// Regions returns the styleable regions in render order.
func Regions() []Region {
	out := make([]Region, len(allRegions))
	copy(out, allRegions[:])
	return out
}

func (r Region) index() int {
	for i, candidate := range allRegions {
		if candidate == r {
			return i
		}
	}
	return -1
}

func (r Region) Valid() bool {
	return r.index() >= 0
}

// SupportsImage reports whether an image reference may style the region.
// Text is color-only.
func (r Region) SupportsImage() bool {
	return r.Valid() && r != RegionText
}

type RegionStyle struct {
	Image string `yaml:"image,omitempty" json:"image,omitempty" toml:"image,omitempty"`
	Color string `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
}

func (s RegionStyle) image() string { return strings.TrimSpace(s.Image) }
func (s RegionStyle) color() string { return strings.TrimSpace(s.Color) }

type Profile struct {
	Primary   *RegionStyle `yaml:"primary,omitempty" json:"primary,omitempty" toml:"primary,omitempty"`
	Secondary *RegionStyle `yaml:"secondary,omitempty" json:"secondary,omitempty" toml:"secondary,omitempty"`
	Text      *RegionStyle `yaml:"text,omitempty" json:"text,omitempty" toml:"text,omitempty"`
	TitleBar  *RegionStyle `yaml:"titleBar,omitempty" json:"titleBar,omitempty" toml:"titleBar,omitempty"`
	SideBar   *RegionStyle `yaml:"sideBar,omitempty" json:"sideBar,omitempty" toml:"sideBar,omitempty"`
	Wallpaper *RegionStyle `yaml:"wallpaper,omitempty" json:"wallpaper,omitempty" toml:"wallpaper,omitempty"`
}

func (p Profile) slot(r Region) *RegionStyle {
	switch r {
	case RegionPrimary:
		return p.Primary
	case RegionSecondary:
		return p.Secondary
	case RegionText:
		return p.Text
	case RegionTitleBar:
		return p.TitleBar
	case RegionSideBar:
		return p.SideBar
	case RegionWallpaper:
		return p.Wallpaper
	default:
		return nil
	}
}

// Style returns the profile's entry for r and whether one is defined.
func (p Profile) Style(r Region) (RegionStyle, bool) {
	s := p.slot(r)
	if s == nil {
		return RegionStyle{}, false
	}
	return *s, true
}

// IsEmpty reports whether no region carries an image or a color.
func (p Profile) IsEmpty() bool {
	for _, r := range allRegions {
		s, ok := p.Style(r)
		if ok && (s.image() != "" || s.color() != "") {
			return false
		}
	}
	return true
}

func (p Profile) Clone() Profile {
	cp := func(s *RegionStyle) *RegionStyle {
		if s == nil {
			return nil
		}
		v := *s
		return &v
	}
	return Profile{
		Primary:   cp(p.Primary),
		Secondary: cp(p.Secondary),
		Text:      cp(p.Text),
		TitleBar:  cp(p.TitleBar),
		SideBar:   cp(p.SideBar),
		Wallpaper: cp(p.Wallpaper),
	}
}

// Config is the persisted theme snapshot. It is replaced wholesale, never
// mutated while a render is using it.
type Config struct {
	SelectedProfile string             `yaml:"selected_profile,omitempty" json:"selected_profile,omitempty" toml:"selected_profile,omitempty"`
	Profiles        map[string]Profile `yaml:"profiles,omitempty" json:"profiles,omitempty" toml:"profiles,omitempty"`
}

// Profile looks up a profile by its exact id. An empty id names no profile.
func (c *Config) Profile(id string) (Profile, bool) {
	if c == nil || c.Profiles == nil {
		return Profile{}, false
	}
	if id == "" {
		return Profile{}, false
	}
	p, ok := c.Profiles[id]
	return p, ok
}

// ProfileIDs returns the profile ids in sorted order.
func (c *Config) ProfileIDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Profiles))
	for id := range c.Profiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *Config) Clone() Config {
	if c == nil {
		return Config{}
	}
	out := Config{SelectedProfile: c.SelectedProfile}
	if c.Profiles != nil {
		out.Profiles = make(map[string]Profile, len(c.Profiles))
		for id, p := range c.Profiles {
			out.Profiles[id] = p.Clone()
		}
	}
	return out
}
