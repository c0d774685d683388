package model

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// History tracks recent grid states so the driver can detect still lifes
// and short-period oscillators.
type History struct {
	hashes []string
}

// UpdateHistory adds the grid's state to the history and maintains its size
func (h *History) UpdateHistory(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if g repeats one of the last three recorded states.
// It expects g to not yet be recorded.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == currentHash {
			return true
		}
	}
	return false
}

// Clear forgets all recorded states
func (h *History) Clear() {
	h.hashes = nil
}
