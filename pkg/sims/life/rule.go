package life

import "lifeterrain/internal/core"

// nextAge applies B3/S23 to a single cell. Births start at age 1, survivors
// age by one up to core.MaxAge, everything else dies.
func nextAge(age uint8, neighbors int) uint8 {
	if age == 0 {
		if neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 2 || neighbors == 3 {
		if age < core.MaxAge {
			return age + 1
		}
		return core.MaxAge
	}
	return 0
}
