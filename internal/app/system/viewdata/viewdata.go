// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/htmlsanitize"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is used until Init is called with a configured name.
const DefaultSiteName = "Admin Console"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	// Site settings (from configuration)
	SiteName   string
	FooterHTML template.HTML

	// Admin context (from the session middleware)
	IsLoggedIn bool
	AdminName  string

	// Page context
	Title       string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
	footer   template.HTML
)

// Init sets the site name and footer shown on every page.
// Call this once at startup from bootstrap. The footer is sanitized here,
// so configuration may carry plain text or a small HTML fragment.
func Init(name, footerHTML string) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		name = DefaultSiteName
	}
	siteName = name
	footer = htmlsanitize.Footer(footerHTML)
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	mu.RLock()
	vm := BaseVM{
		SiteName:    siteName,
		FooterHTML:  footer,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
	mu.RUnlock()

	if s, ok := auth.CurrentSession(r); ok {
		vm.IsLoggedIn = true
		vm.AdminName = s.AdminName
	}
	return vm
}
