package views

// Window returns the half-open range [start, end) of rows to draw so that
// cursor stays visible in a list of total rows with room for size rows
func Window(cursor, total, size int) (start, end int) {
	if size <= 0 || total <= size {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	start = cursor - size/2
	start = max(0, min(start, total-size))
	return start, start + size
}
