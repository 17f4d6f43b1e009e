package display

// ShareBar renders a fixed-width ASCII bar filled in proportion to
// count/total. A zero total renders an empty bar rather than dividing.
func ShareBar(count, total, width int) string {
	if width < 1 {
		width = 10
	}

	var perc int
	if total > 0 {
		perc = (count * 100) / total
		if perc > 100 {
			perc = 100
		}
		if perc < 0 {
			perc = 0
		}
	}

	filled := (perc * width) / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := "["
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "="
		} else {
			bar += " "
		}
	}
	bar += "]"

	return bar
}
