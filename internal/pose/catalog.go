package pose

import "fmt"

// PoseCount is the number of poses in one round.
const PoseCount = 5

// catalog is the static pose table. Indexes are 1-based to match the
// exercise sequence shown to the user; thumb ranges are deliberately
// wide because thumb angles are unreliable at this camera distance.
var catalog = [PoseCount]Definition{
	{
		Index:  1,
		Name:   "เหยียดมือตรง",
		Ranges: [FingerCount]Range{{0, 200}, {150, 185}, {150, 185}, {150, 185}, {150, 185}},
	},
	{
		Index:  2,
		Name:   "ทำมือคล้ายตะขอ",
		Ranges: [FingerCount]Range{{0, 200}, {40, 170}, {40, 170}, {40, 170}, {40, 170}},
	},
	{
		Index:  3,
		Name:   "กำมือ",
		Ranges: [FingerCount]Range{{0, 200}, {0, 60}, {0, 60}, {0, 60}, {0, 60}},
	},
	{
		Index:  4,
		Name:   "กำมือแบบเหยียดปลายนิ้ว",
		Ranges: [FingerCount]Range{{0, 200}, {0, 50}, {0, 50}, {0, 50}, {0, 50}},
	},
	{
		Index:  5,
		Name:   "งอโคนนิ้วแต่เหยียดปลายนิ้วมือ",
		Ranges: [FingerCount]Range{{0, 200}, {50, 185}, {50, 185}, {50, 160}, {50, 160}},
	},
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}

// validateCatalog checks the static table once at startup: every pose
// must carry a name and well-ordered ranges.
func validateCatalog() error {
	for i, def := range catalog {
		if def.Index != i+1 {
			return fmt.Errorf("pose catalog: entry %d has index %d", i, def.Index)
		}
		if def.Name == "" {
			return fmt.Errorf("pose catalog: pose %d has no name", def.Index)
		}
		for f, r := range def.Ranges {
			if r.Min > r.Max {
				return fmt.Errorf("pose catalog: pose %d finger %d has min %.1f > max %.1f",
					def.Index, f, r.Min, r.Max)
			}
		}
	}
	return nil
}

// ByIndex returns the pose definition for a 1-based index. Unknown
// indexes fall back to pose 1.
func ByIndex(idx int) Definition {
	if idx < 1 || idx > PoseCount {
		return catalog[0]
	}
	return catalog[idx-1]
}

// Catalog returns a copy of the full pose table in sequence order.
func Catalog() [PoseCount]Definition {
	return catalog
}
