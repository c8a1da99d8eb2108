// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The reader service dispatches extraction through the decoder
// registry; the fileops service wraps platform filesystem primitives
// and the trash store.
package services
