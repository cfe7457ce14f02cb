// Package render serializes a jobspec.Block tree into HCL job-spec text.
//
// Blocks, labels and attributes are written in tree order with hclwrite and
// the result is formatted with hclwrite.Format. The formatted text is parsed
// back once before it is returned, so a document that would not load in the
// scheduler is reported as a *RenderError instead of being emitted.
package render
