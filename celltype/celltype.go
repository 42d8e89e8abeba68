// Package celltype enumerates the immune cell populations measured for every
// sample. The relational schema, the frequency calculator, and the response
// tests all derive their columns from this one list, so adding a population
// here is the only change needed to carry it through the pipeline.
package celltype

// Population is one of the measured immune cell types. Its string value is
// also the column name used in the cell_counts relation and in the frequency
// summary artifact.
type Population string

const (
	BCell    Population = "b_cell"
	CD8TCell Population = "cd8_t_cell"
	CD4TCell Population = "cd4_t_cell"
	NKCell   Population = "nk_cell"
	Monocyte Population = "monocyte"
)

// All lists every measured population in canonical column order.
var All = []Population{BCell, CD8TCell, CD4TCell, NKCell, Monocyte}

func (p Population) String() string {
	return string(p)
}

// Label returns the display name used in figures.
func (p Population) Label() string {
	switch p {
	case BCell:
		return "B-cell"
	case CD8TCell:
		return "CD8 T-cell"
	case CD4TCell:
		return "CD4 T-cell"
	case NKCell:
		return "NK cell"
	case Monocyte:
		return "Monocyte"
	}

	return string(p)
}

// Valid reports whether p is one of the measured populations.
func Valid(p Population) bool {
	for _, known := range All {
		if p == known {
			return true
		}
	}

	return false
}
