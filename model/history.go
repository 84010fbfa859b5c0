package model

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// History remembers recent grid states to spot still lifes and short oscillators
type History struct {
	hashes []string
}

// Record adds the grid's current state to the history, dropping the oldest entry when full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the grid's current state matches one of the last three recorded states
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

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
