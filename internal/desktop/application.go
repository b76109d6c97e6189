// Package desktop owns which applications are running, which of them have a
// visible window, and which window is focused.
package desktop

import (
	"errors"
	"fmt"
	"strings"
)

// Application identifies one launchable program.
type Application string

const (
	Welcome  Application = "welcome"
	AboutMe  Application = "about-me"
	Projects Application = "projects"
	Connect  Application = "connect"
	Blog     Application = "blog"
	Paint    Application = "paint"
)

// ErrUnknownApplication is returned when parsing a name outside the closed set.
var ErrUnknownApplication = errors.New("unknown application")

// Applications returns every application in desktop icon order.
func Applications() []Application {
	return []Application{Welcome, AboutMe, Projects, Connect, Blog, Paint}
}

// Parse resolves a name to an Application.
func Parse(name string) (Application, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, app := range Applications() {
		if string(app) == name {
			return app, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApplication, name)
}

func (a Application) String() string { return string(a) }
