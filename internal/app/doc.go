// Package app wires the translation pipeline together: it owns the logger
// and the filesystem, and runs load, translate, render and emit in order for
// a single descriptor. It is decoupled from any specific entrypoint like a
// CLI.
package app
