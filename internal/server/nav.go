package server

// navTarget is one sidebar destination. The shell only links to it; the page
// behind it owns its own content.
type navTarget struct {
	ID    string
	Label string
	Path  string
}

var navDashboard = navTarget{ID: "dashboard", Label: "Dashboard", Path: "/dashboard"}

var navTargets = []navTarget{
	navDashboard,
	{ID: "positions", Label: "Positions", Path: "/positions"},
	{ID: "trends", Label: "Trends", Path: "/trends"},
	{ID: "prices", Label: "Prices", Path: "/prices"},
	{ID: "hedge-report", Label: "Hedge Report", Path: "/hedge-report"},
	{ID: "alerts", Label: "Alerts", Path: "/alerts"},
	{ID: "portfolio", Label: "Portfolio", Path: "/portfolio"},
	{ID: "simulator", Label: "Simulator", Path: "/simulator"},
	{ID: "database-viewer", Label: "Database Viewer", Path: "/database-viewer"},
	{ID: "blast-radius", Label: "Blast Radius", Path: "/blast-radius"},
	{ID: "system-config", Label: "System Config", Path: "/system-config"},
}

type navItem struct {
	navTarget
	Active bool
}

func navItems(activeID string) []navItem {
	out := make([]navItem, 0, len(navTargets))
	for _, t := range navTargets {
		out = append(out, navItem{navTarget: t, Active: t.ID == activeID})
	}
	return out
}
