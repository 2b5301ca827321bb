package internal

import "fmt"

// UsageMessage returns the headline and subtitle shown above today's counter.
func UsageMessage(count int) (title, subtitle string) {
	switch {
	case count == 0:
		return "You haven't logged any usage today!", "Keep it up!"
	case count == 1:
		return "You've logged 1 usage today", "Try to reduce it tomorrow"
	default:
		return fmt.Sprintf("You've logged %d usages today", count), "Try to reduce it tomorrow"
	}
}
