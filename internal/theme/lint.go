package theme

import "fmt"

// Lint lists the problems that resolution silently masks with defaults.
// None of them stop the shell from rendering.
func (c *Config) Lint() []string {
	if c == nil {
		return []string{"theme config is missing"}
	}
	var warnings []string

	selected := c.SelectedProfile
	switch {
	case selected == "":
		warnings = append(warnings, "selected_profile is not set")
	default:
		if _, ok := c.Profile(selected); !ok {
			warnings = append(warnings, fmt.Sprintf("selected_profile %q does not name a profile", selected))
		}
	}

	for _, id := range c.ProfileIDs() {
		if id == "" {
			warnings = append(warnings, "profiles contains an entry with a blank id")
			continue
		}
		p := c.Profiles[id]
		for _, region := range allRegions {
			style, ok := p.Style(region)
			if !ok {
				continue
			}
			if style.image() != "" && !region.SupportsImage() {
				warnings = append(warnings, fmt.Sprintf("profiles.%s.%s.image is ignored", id, region))
			}
			if col := style.color(); col != "" && !ValidColor(col) {
				warnings = append(warnings, fmt.Sprintf("profiles.%s.%s.color %q is not a valid CSS color", id, region, col))
			}
		}
	}
	return warnings
}
