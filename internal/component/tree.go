package component

// Complexity is the size tier of a screen.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ComplexityFor tiers a screen by its total component count.
func ComplexityFor(count int) Complexity {
	switch {
	case count <= 10:
		return ComplexitySimple
	case count <= 50:
		return ComplexityMedium
	default:
		return ComplexityComplex
	}
}

// TreeMetadata summarizes a Component Tree.
type TreeMetadata struct {
	ScreenName       string
	Complexity       Complexity
	TotalComponents  int
	RepeatableCount  int
	InteractiveCount int
}

// Tree is a classified screen: its root, every component in pre-order and
// summary metadata.
type Tree struct {
	Root       *Component
	Components []*Component
	Metadata   TreeMetadata
}

// Alternative is a classification that was considered and rejected.
type Alternative struct {
	Type       Type
	Confidence float64
}

// Result is the outcome of classifying one component.
type Result struct {
	Component    *Component
	Type         Type
	Confidence   float64
	Reasons      []string
	Alternatives []Alternative
}
