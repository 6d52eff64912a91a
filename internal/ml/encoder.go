package ml

// LabelEncoder maps raw target values to integer class indexes.
// Classes are numbered in first-seen-unique order, so the mapping is
// deterministic for a given file.
type LabelEncoder struct {
	Classes []string
}

// FitTransform assigns an index to every distinct label in order of first
// appearance and returns the encoded labels.
func (e *LabelEncoder) FitTransform(labels []string) []int {
	index := make(map[string]int)
	encoded := make([]int, len(labels))

	for i, label := range labels {
		idx, ok := index[label]
		if !ok {
			idx = len(e.Classes)
			index[label] = idx
			e.Classes = append(e.Classes, label)
		}
		encoded[i] = idx
	}

	return encoded
}
