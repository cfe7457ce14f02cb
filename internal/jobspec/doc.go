// Package jobspec holds the in-memory tree of a scheduler job-spec document.
//
// A document is a tree of Blocks. Each Block has a type ("job", "group",
// "task", ...), optional labels, an ordered list of attributes and an ordered
// list of child blocks. Order is significant: the renderer reproduces it
// verbatim so the output is deterministic.
//
// Attribute values are cty values so the renderer can encode them with the
// exact type the scheduler expects (string, number, bool, list of strings).
package jobspec
