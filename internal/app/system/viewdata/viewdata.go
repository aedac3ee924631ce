// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// SiteName and SiteSubtitle are shown in the sidebar header.
const (
	SiteName     = "PickMe"
	SiteSubtitle = "Intelligence"
	HeaderTitle  = "Admin Control Panel"
)

// ThemeCookie holds the visitor's light/dark preference.
const ThemeCookie = "theme"

// Sessions is the read side of the session holder that the shell needs.
type Sessions interface {
	CurrentUser(r *http.Request) (*auth.SessionUser, bool)
}

// ShellVM contains the fields the layout renders around every screen.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.ShellVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    ShellVM: viewdata.NewShellVM(r, h.Sessions, "Page Title"),
//	}
type ShellVM struct {
	SiteName     string
	SiteSubtitle string
	HeaderTitle  string

	// User context (from the session holder)
	IsLoggedIn  bool
	UserName    string // display name
	UserInitial string
	Role        string

	// Page context
	Title       string
	CurrentPath string
	Nav         []NavItem
	Theme       string // "light" | "dark"

	// CSRF protection
	CSRFToken string
}

// NewShellVM creates a fully populated ShellVM for a page. sessions may be nil
// for pages rendered without a session (e.g. error pages in tests).
func NewShellVM(r *http.Request, sessions Sessions, title string) ShellVM {
	path := httpnav.CurrentPath(r)

	vm := ShellVM{
		SiteName:     SiteName,
		SiteSubtitle: SiteSubtitle,
		HeaderTitle:  HeaderTitle,
		Title:        title,
		CurrentPath:  path,
		Nav:          BuildNav(path),
		Theme:        ThemeFromRequest(r),
		CSRFToken:    csrf.Token(r),
		UserInitial:  "A",
	}

	if sessions != nil {
		if u, ok := sessions.CurrentUser(r); ok {
			vm.IsLoggedIn = true
			vm.UserName = u.DisplayName()
			vm.UserInitial = u.Initials()
			vm.Role = u.Role
		}
	}

	return vm
}

// ThemeFromRequest returns "dark" when the theme cookie says so, else "light".
func ThemeFromRequest(r *http.Request) string {
	if c, err := r.Cookie(ThemeCookie); err == nil && c.Value == "dark" {
		return "dark"
	}
	return "light"
}
