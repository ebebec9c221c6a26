package mapspec

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the variant of a Node.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindGroup
	KindField
	KindLoop
	KindRepeating
	KindList
	KindLiteral
	KindUnrecognized // a Group revived from an unknown "_type"

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)

// IsDescriptor reports whether k is one of the three descriptor kinds.
func (k Kind) IsDescriptor() bool {
	switch k {
	default:
		return false
	case KindField, KindLoop, KindRepeating:
		return true
	}
}

// IsComposite reports whether nodes of kind k hold sub-specifications.
func (k Kind) IsComposite() bool {
	switch k {
	default:
		return false
	case KindGroup, KindLoop, KindRepeating, KindList, KindUnrecognized:
		return true
	}
}
