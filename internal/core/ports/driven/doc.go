// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DatasetStore: Reads the source dataset and persists the slim dataset
//   - DescriptionCleaner: Turns HTML-bearing descriptions into plain text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - only the watch command needs them:
//
//   - FileWatcher: Reports changes to the source dataset
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
