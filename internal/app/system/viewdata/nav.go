package viewdata

// Screen paths.
const (
	PathDashboard     = "/admin/dashboard"
	PathOfficers      = "/admin/users"
	PathRegistrations = "/admin/api-modules"
	PathQueryHistory  = "/admin/rate-plans"
	PathCredits       = "/admin/logs"
	PathAPIManagement = "/admin/manual-requests"
	PathLiveRequests  = "/admin/broadcasts"
	PathLogin         = "/admin/login"
	PathLogout        = "/admin/logout"
	PathThemeToggle   = "/admin/theme"
)

// Screen is one navigable screen of the console.
type Screen struct {
	Path  string
	Label string
	Icon  string
}

// NavItem is a Screen as rendered in the sidebar.
type NavItem struct {
	Screen
	Active bool
}

// Screens lists every sidebar entry in display order.
var Screens = []Screen{
	{Path: PathDashboard, Label: "Dashboard", Icon: "⭕"},
	{Path: PathOfficers, Label: "Officers", Icon: "👥"},
	{Path: PathRegistrations, Label: "Registrations", Icon: "👥"},
	{Path: PathQueryHistory, Label: "Query History", Icon: "🔍"},
	{Path: PathCredits, Label: "Credits & Billing", Icon: "💳"},
	{Path: PathAPIManagement, Label: "API Management", Icon: "⚙️"},
	{Path: PathLiveRequests, Label: "Live Requests", Icon: "📈"},
}

// BuildNav marks the entry whose path equals currentPath exactly.
func BuildNav(currentPath string) []NavItem {
	items := make([]NavItem, len(Screens))
	for i, s := range Screens {
		items[i] = NavItem{Screen: s, Active: s.Path == currentPath}
	}
	return items
}

// ScreenFor returns the screen registered at path.
func ScreenFor(path string) (Screen, bool) {
	for _, s := range Screens {
		if s.Path == path {
			return s, true
		}
	}
	return Screen{}, false
}
