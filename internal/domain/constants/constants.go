// Package constants defines shared application-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP job queue for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub as the job queue.
	PubSubProviderGoogle = "google"
)
