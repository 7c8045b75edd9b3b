package pathutil

import (
	"fmt"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanSize formats a byte count for display, scaling by 1024 through
// B, KB, MB, GB, TB, and PB. Scaling stops at PB regardless of magnitude.
// Whole byte counts carry no decimal; scaled values use two decimal places.
func HumanSize(bytes int64) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024.0 && unit < len(sizeUnits)-1 {
		size /= 1024.0
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}

	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}
