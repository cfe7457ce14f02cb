// Package descriptor provides the concrete loader for workload descriptors.
// It reads a TOML or YAML file, checks it for missing or mistyped fields and
// turns it into the format-agnostic config.Model, applying the documented
// defaults along the way.
//
// Decoding happens in two steps. The document is first decoded into the
// unexported raw* types, which mirror the input keys and use pointers for
// every field that has a default. The raw document is then validated and
// converted into config.Model. Env values are classified into the closed
// config.EnvValue set here, so the translation engine never sees a dynamic
// value.
package descriptor
