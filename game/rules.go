package game

// Scoring and timing rules of the classic game
const (
	TimePenalty = 1.0   // Cost of every Pacman move
	FoodScore   = 10.0  // Eating one food pellet
	WinScore    = 500.0 // Clearing the board
	LoseScore   = 500.0 // Being caught by an active ghost
	GhostScore  = 200.0 // Eating a scared ghost
	ScaredTime  = 40    // Ghost moves a capsule keeps ghosts scared
)
