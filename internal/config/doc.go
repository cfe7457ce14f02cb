// Package config defines the format-agnostic model of a workload descriptor
// along with the Loader interface that produces it.
//
// The `config.Model` is the single input of the `translate` package. It is
// populated once by a concrete loader (see the `descriptor` package), with
// all defaults already applied, and is treated as read-only afterwards.
package config
