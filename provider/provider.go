// Package provider defines AI translation providers for the translation
// memory's compute path.
package provider

import "github.com/subtitlestudio/tmcache"

// Provider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type Provider = tmcache.Provider

// Request is an alias to the main package type.
type Request = tmcache.Request
