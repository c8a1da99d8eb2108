// Package driving defines the interfaces external actors use to drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and MCP adapters call in through these interfaces; core
// services implement them.
//
//   - ReaderService: Format-dispatched text extraction
//   - FileService: Pass-through filesystem operations and trash staging
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, service, or decoder package
package driving
