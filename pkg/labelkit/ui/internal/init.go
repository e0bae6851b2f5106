// Package internal contains the SDL infrastructure behind the ui package:
// window and renderer setup, theming, fonts, input mapping and texture
// caching. Types and functions in this package are not part of the public API.
package internal
