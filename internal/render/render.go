package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/nodock/internal/ctxlog"
	"github.com/vk/nodock/internal/jobspec"
	"github.com/zclconf/go-cty/cty"
)

// Render returns the formatted HCL text of the tree rooted at root.
func Render(ctx context.Context, root *jobspec.Block) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rendering job spec.", "root", root.Type)

	f := hclwrite.NewEmptyFile()
	if err := appendBlock(f.Body(), root, ""); err != nil {
		return nil, err
	}

	out := hclwrite.Format(f.Bytes())

	if _, diags := hclsyntax.ParseConfig(out, "jobspec.hcl", hcl.InitialPos); diags.HasErrors() {
		return nil, &RenderError{Err: fmt.Errorf("rendered document does not parse: %w", diags)}
	}

	logger.Debug("Job spec rendered.", "bytes", len(out))
	return out, nil
}

// appendBlock writes b and its subtree into parent. A blank line separates
// a nested block from whatever precedes it in the same body.
func appendBlock(parent *hclwrite.Body, b *jobspec.Block, parentPath string) error {
	path := blockPath(parentPath, b)

	if !hclsyntax.ValidIdentifier(b.Type) {
		return &RenderError{Block: path, Err: fmt.Errorf("invalid block type %q", b.Type)}
	}

	block := parent.AppendNewBlock(b.Type, b.Labels)
	body := block.Body()

	seen := make(map[string]struct{}, len(b.Attributes))
	for _, attr := range b.Attributes {
		if !hclsyntax.ValidIdentifier(attr.Name) {
			return &RenderError{Block: path, Err: fmt.Errorf("invalid attribute name %q", attr.Name)}
		}
		if _, dup := seen[attr.Name]; dup {
			return &RenderError{Block: path, Err: fmt.Errorf("duplicate attribute %q", attr.Name)}
		}
		seen[attr.Name] = struct{}{}

		if err := checkValue(attr.Value); err != nil {
			return &RenderError{Block: path, Err: fmt.Errorf("attribute %q: %w", attr.Name, err)}
		}
		body.SetAttributeValue(attr.Name, attr.Value)
	}

	for i, child := range b.Blocks {
		if i > 0 || len(b.Attributes) > 0 {
			body.AppendNewline()
		}
		if err := appendBlock(body, child, path); err != nil {
			return err
		}
	}
	return nil
}

// checkValue accepts the value types the job spec schema uses.
func checkValue(v cty.Value) error {
	if v.IsNull() {
		return fmt.Errorf("null value")
	}
	if !v.IsWhollyKnown() {
		return fmt.Errorf("unknown value")
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String), ty.Equals(cty.Number), ty.Equals(cty.Bool):
		return nil
	case ty.IsListType() && ty.ElementType().Equals(cty.String):
		return nil
	default:
		return fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

func blockPath(parent string, b *jobspec.Block) string {
	p := b.Type
	for _, l := range b.Labels {
		p += " " + strconv.Quote(l)
	}
	if parent == "" {
		return p
	}
	return parent + "." + p
}
