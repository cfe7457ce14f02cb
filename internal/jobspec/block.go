package jobspec

import "github.com/zclconf/go-cty/cty"

// Attribute is a key/typed-value pair attached to a Block.
type Attribute struct {
	Name  string
	Value cty.Value
}

// Block is a node of the job-spec tree.
type Block struct {
	Type       string
	Labels     []string
	Attributes []Attribute
	Blocks     []*Block
}

// String returns a string-typed attribute.
func String(name, v string) Attribute {
	return Attribute{Name: name, Value: cty.StringVal(v)}
}

// Int returns a number-typed attribute holding an integer.
func Int(name string, v int64) Attribute {
	return Attribute{Name: name, Value: cty.NumberIntVal(v)}
}

// Bool returns a bool-typed attribute.
func Bool(name string, v bool) Attribute {
	return Attribute{Name: name, Value: cty.BoolVal(v)}
}

// Strings returns a list-of-strings attribute. A nil or empty slice yields an
// empty list rather than null.
func Strings(name string, vs []string) Attribute {
	if len(vs) == 0 {
		return Attribute{Name: name, Value: cty.ListValEmpty(cty.String)}
	}
	vals := make([]cty.Value, 0, len(vs))
	for _, v := range vs {
		vals = append(vals, cty.StringVal(v))
	}
	return Attribute{Name: name, Value: cty.ListVal(vals)}
}

// Attribute returns the value of the first attribute with the given name.
func (b *Block) Attribute(name string) (cty.Value, bool) {
	for _, attr := range b.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return cty.NilVal, false
}

// AttributeNames returns the attribute names in order.
func (b *Block) AttributeNames() []string {
	names := make([]string, 0, len(b.Attributes))
	for _, attr := range b.Attributes {
		names = append(names, attr.Name)
	}
	return names
}

// BlocksOfType returns the direct children of the given type, in order.
func (b *Block) BlocksOfType(typ string) []*Block {
	var found []*Block
	for _, child := range b.Blocks {
		if child.Type == typ {
			found = append(found, child)
		}
	}
	return found
}

// Walk visits b and all its descendants depth-first, parents before
// children. Returning false from fn stops the descent into that block.
func (b *Block) Walk(fn func(*Block) bool) {
	if !fn(b) {
		return
	}
	for _, child := range b.Blocks {
		child.Walk(fn)
	}
}
