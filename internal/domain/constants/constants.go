// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Change feed providers
const (
	PubSubProviderMemory = "memory"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Roles carried in access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
