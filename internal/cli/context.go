// Package cli provides the command-line interface for ssqfetch.
package cli

import (
	"github.com/lotto-works/ssqfetch/internal/app"
)

// globalApp holds the shared Application instance. Commands run strictly
// sequentially, so a package-level reference is sufficient.
var globalApp *app.Application

// SetApp stores the Application for commands to access.
func SetApp(a *app.Application) {
	globalApp = a
}

// GetApp retrieves the Application.
func GetApp() *app.Application {
	return globalApp
}
