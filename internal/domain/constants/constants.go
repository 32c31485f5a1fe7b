// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Content types
const (
	ContentTypePNG = "image/png"
)

// DefaultBrandLabel is drawn into the logo of every generated code.
const DefaultBrandLabel = "TS"
