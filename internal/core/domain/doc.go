// Package domain defines the core business entities for Filekit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Format: A structural file-format category understood by the reader
//   - Extraction: The normalised text produced from a file
//   - TrashEntry: A staged deletion awaiting restore or purge
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
