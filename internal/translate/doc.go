// Package translate is the translation engine. It maps a config.Model onto
// the job/group/network/service/volume/task hierarchy of the scheduler's
// job-spec schema and returns the result as a jobspec.Block tree.
//
// Translation is pure and deterministic: the shape of the output is fully
// determined by the shape of the input, and attribute and block order follow
// the fixed order of the target schema. The only input the engine rejects is
// an unknown volume access mode, reported as a *TranslationError. Everything
// else (dangling port references, empty datacenter lists) passes through
// untouched and is left for the scheduler to reject.
package translate
