package theme

import (
	"strings"
	"testing"
)

func requireDefault(t *testing.T, res Resolved, region Region) {
	t.Helper()
	v := res.Get(region)
	if v.Kind != KindColor || v.Color != DefaultColor(region) || !v.Default {
		t.Fatalf("expected default for %s, got %+v", region, v)
	}
}

func TestResolveColorOnlyProfile(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "p1",
		Profiles: map[string]Profile{
			"p1": {Primary: &RegionStyle{Color: "#111"}},
		},
	}
	res := Resolve(cfg)
	if !res.Found || res.Profile != "p1" {
		t.Fatalf("expected p1 to be found, got %+v", res)
	}
	primary := res.Get(RegionPrimary)
	if primary.Kind != KindColor || primary.Color != "#111" || primary.Default {
		t.Fatalf("unexpected primary: %+v", primary)
	}
	for _, r := range []Region{RegionSecondary, RegionText, RegionTitleBar, RegionSideBar, RegionWallpaper} {
		requireDefault(t, res, r)
	}
}

func TestResolveImageWinsOverColor(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "p1",
		Profiles: map[string]Profile{
			"p1": {Wallpaper: &RegionStyle{Image: "bg.png", Color: "#222"}},
		},
	}
	wall := Resolve(cfg).Get(RegionWallpaper)
	if wall.Kind != KindImage || wall.Image != "bg.png" || wall.Color != "" {
		t.Fatalf("expected wallpaper image bg.png, got %+v", wall)
	}
}

func TestResolveImageForEveryImageRegion(t *testing.T) {
	style := &RegionStyle{Image: "images/x.jpg", Color: "red"}
	cfg := &Config{
		SelectedProfile: "all",
		Profiles: map[string]Profile{
			"all": {Primary: style, Secondary: style, Text: style, TitleBar: style, SideBar: style, Wallpaper: style},
		},
	}
	res := Resolve(cfg)
	for _, r := range Regions() {
		v := res.Get(r)
		if r == RegionText {
			if v.Kind != KindColor || v.Color != "red" {
				t.Fatalf("text must ignore image, got %+v", v)
			}
			continue
		}
		if v.Kind != KindImage || v.Image != "images/x.jpg" {
			t.Fatalf("region %s: expected image, got %+v", r, v)
		}
	}
}

func TestResolveTextImageOnlyFallsBackToDefault(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "p",
		Profiles:        map[string]Profile{"p": {Text: &RegionStyle{Image: "text.png"}}},
	}
	requireDefault(t, Resolve(cfg), RegionText)
}

func TestResolveMissingSelectionUsesDefaults(t *testing.T) {
	profiles := map[string]Profile{
		"p1": {Primary: &RegionStyle{Color: "#111"}, Wallpaper: &RegionStyle{Image: "bg.png"}},
	}
	cases := map[string]*Config{
		"nil config":   nil,
		"empty":        {Profiles: profiles},
		"blank":        {SelectedProfile: "   ", Profiles: profiles},
		"dangling":     {SelectedProfile: "nope", Profiles: profiles},
		"no profiles":  {SelectedProfile: "p1"},
		"empty config": {},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			res := Resolve(cfg)
			if res.Found {
				t.Fatalf("expected no profile to be found")
			}
			for _, r := range Regions() {
				requireDefault(t, res, r)
			}
		})
	}
}

func TestResolveBlankFieldsAreAbsent(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "p",
		Profiles: map[string]Profile{
			"p": {
				Primary:  &RegionStyle{Image: "  ", Color: " #abc "},
				SideBar:  &RegionStyle{},
				TitleBar: &RegionStyle{Color: "red; display:none"},
			},
		},
	}
	res := Resolve(cfg)
	if v := res.Get(RegionPrimary); v.Kind != KindColor || v.Color != "#abc" {
		t.Fatalf("expected trimmed color, got %+v", v)
	}
	requireDefault(t, res, RegionSideBar)
	requireDefault(t, res, RegionTitleBar)
}

func TestResolveProfileExplicitID(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "a",
		Profiles: map[string]Profile{
			"a": {Primary: &RegionStyle{Color: "#aaa"}},
			"b": {Primary: &RegionStyle{Color: "#bbb"}},
		},
	}
	if got := ResolveProfile(cfg, "b").Get(RegionPrimary).Color; got != "#bbb" {
		t.Fatalf("expected #bbb, got %q", got)
	}
	if got := ResolveRegion(cfg, "a", RegionPrimary).Color; got != "#aaa" {
		t.Fatalf("expected #aaa, got %q", got)
	}
}

func TestDefaultsDifferPerRegion(t *testing.T) {
	seen := map[string]Region{}
	for _, r := range Regions() {
		c := DefaultColor(r)
		if !ValidColor(c) {
			t.Fatalf("default for %s is not a valid color: %q", r, c)
		}
		if prev, ok := seen[c]; ok {
			t.Fatalf("regions %s and %s share default %q", prev, r, c)
		}
		seen[c] = r
	}
}

func TestResolvedAllOrder(t *testing.T) {
	all := Resolve(nil).All()
	if len(all) != 6 {
		t.Fatalf("expected 6 regions, got %d", len(all))
	}
	for i, r := range Regions() {
		if all[i].Region != r {
			t.Fatalf("position %d: expected %s, got %s", i, r, all[i].Region)
		}
	}
}

func TestValidColor(t *testing.T) {
	valid := []string{"#111", "#a1b2c3", "#a1b2c3d4", "red", "rebeccapurple", "rgb(1, 2, 3)", "rgba(0,0,0,.5)", "hsl(120deg 50% 50% / 0.3)", "var(--accent)",
		"color-mix(in srgb, red 50%, blue)", "color(display-p3 1 0 0)", "light-dark(#fff, #000)",
		"var(--accent, rgb(0 0 0))", "color-mix(in oklch, var(--a) 30%, #123)"}
	for _, c := range valid {
		if !ValidColor(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	invalid := []string{"", "#12", "#12345", "red;", "url(x)", "rgb(1,2,3);}", `"red"`, "expression(alert(1))", strings.Repeat("a", 80),
		"rgb(1,2,3) red", "rgb(1,2", "rgb(1,2))(", "color-mix(in srgb, url(x) 50%, red)", "var(--a) var(--b)"}
	for _, c := range invalid {
		if ValidColor(c) {
			t.Fatalf("expected %q to be invalid", c)
		}
	}
}

func TestResolveMatchesProfileKeyExactly(t *testing.T) {
	padded := &Config{
		SelectedProfile: " p1",
		Profiles:        map[string]Profile{" p1": {Primary: &RegionStyle{Color: "#111"}}},
	}
	res := Resolve(padded)
	if !res.Found || res.Profile != " p1" || res.Get(RegionPrimary).Color != "#111" {
		t.Fatalf("expected key %q to resolve, got %+v", " p1", res)
	}

	dangling := &Config{
		SelectedProfile: "p1 ",
		Profiles:        map[string]Profile{"p1": {Primary: &RegionStyle{Color: "#111"}}},
	}
	res = Resolve(dangling)
	if res.Found {
		t.Fatalf("selection %q must not match key %q", "p1 ", "p1")
	}
	for _, r := range Regions() {
		requireDefault(t, res, r)
	}
	if w := dangling.Lint(); len(w) != 1 || !strings.Contains(w[0], `"p1 " does not name a profile`) {
		t.Fatalf("expected dangling selection warning, got %v", w)
	}
}

func TestResolveColorFunctions(t *testing.T) {
	cfg := &Config{
		SelectedProfile: "p",
		Profiles:        map[string]Profile{"p": {Primary: &RegionStyle{Color: "color-mix(in srgb, red 50%, blue)"}}},
	}
	v := Resolve(cfg).Get(RegionPrimary)
	if v.Default || v.Color != "color-mix(in srgb, red 50%, blue)" {
		t.Fatalf("expected color-mix to resolve, got %+v", v)
	}
}
