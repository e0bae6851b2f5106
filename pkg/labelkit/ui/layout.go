package ui

// scrollWindow returns the first visible row so that cursor stays on
// screen, moving first as little as possible.
func scrollWindow(cursor, first, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if cursor < first {
		first = cursor
	}
	if cursor >= first+visible {
		first = cursor - visible + 1
	}
	if first > total-visible {
		first = total - visible
	}
	if first < 0 {
		first = 0
	}
	return first
}

// moveCursor steps by delta and wraps at either end for single steps.
// Page steps clamp instead.
func moveCursor(cursor, delta, total int) int {
	if total <= 0 {
		return 0
	}
	next := cursor + delta
	if delta == 1 || delta == -1 {
		return (next%total + total) % total
	}
	if next < 0 {
		return 0
	}
	if next >= total {
		return total - 1
	}
	return next
}

func clampCursor(cursor, total int) int {
	if total <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}
