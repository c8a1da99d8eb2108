// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Decoder: Produces normalised text for one or more formats
//   - DecoderRegistry: Selects the decoder for a resolved format
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - TrashStore: Staged-deletion index. Without it, deletes are
//     always permanent and restore is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or decoder package
package driven
