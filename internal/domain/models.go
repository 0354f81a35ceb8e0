package domain

// Row is a single record of the dataset
type Row struct {
	ID     int
	Fields []string // display values, one per column
}

// ViewportState is a read-only snapshot of the window over the dataset
type ViewportState struct {
	ScrollOffset int // index of the first visible row
	PageSize     int // rows visible at once
	DataLength   int // total row count
}

// End returns the exclusive index of the last visible row
func (s ViewportState) End() int {
	end := s.ScrollOffset + s.PageSize
	if end > s.DataLength {
		end = s.DataLength
	}
	if end < s.ScrollOffset {
		return s.ScrollOffset
	}
	return end
}
