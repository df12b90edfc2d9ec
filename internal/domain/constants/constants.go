// Package constants holds configuration enumerations.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// HistoryStoreMemory keeps shown-notification history in process memory.
	HistoryStoreMemory = "memory"
	// HistoryStoreBadger keeps shown-notification history in an embedded BadgerDB.
	HistoryStoreBadger = "badger"
)
