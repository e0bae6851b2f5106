package labelkit

// DisplayIndex maps a logical color index to its row in the display list.
// When the "None" row is enabled it occupies row 0, so every color shifts
// down by one and logical -1 lands on the "None" row.
func DisplayIndex(logical int, noneEnabled bool) int {
	if noneEnabled {
		return logical + 1
	}
	return logical
}

// LogicalIndex is the inverse of DisplayIndex.
func LogicalIndex(display int, noneEnabled bool) int {
	if noneEnabled {
		return display - 1
	}
	return display
}
