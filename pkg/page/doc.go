// Package page defines the per-module render input produced by the build
// pipeline. The builder lives in internal/page but returns the types exposed
// here, so renderers and callers never import internal packages directly.
// Entries appear in source declaration order: each model followed by its
// fields and validators, with the signature tree each directive produced.
package page
