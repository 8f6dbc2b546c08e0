package forest

import "fmt"

type Type int

const (
	LeafType Type = iota
	BranchType
)

func (t Type) String() string {
	switch t {
	case LeafType:
		return "Leaf"
	case BranchType:
		return "Branch"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Leaf":
		*t = LeafType
	case "Branch":
		*t = BranchType
	default:
		return fmt.Errorf("unrecognized type %q", d)
	}
	return nil
}

func Types() []Type {
	return []Type{LeafType, BranchType}
}

func (t Type) IsLeaf() bool {
	return t == LeafType
}
