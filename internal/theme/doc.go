// Package theme defines the visual themes chart stylesheets are scoped to.
// It holds the theme enumeration (name and CSS selector prefix), the
// embedded base stylesheet used by the HTML renderer, and @import
// inlining for user supplied stylesheets.
package theme
