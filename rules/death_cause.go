package rules

const (
	// DeathCauseWallCollision is when the head enters a permanent wall
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseObstacleCollision is when the head enters a live timed obstacle
	DeathCauseObstacleCollision = "obstacle-collision"
	// DeathCauseSnakeSelfCollision is when the head touches its own trail
	DeathCauseSnakeSelfCollision = "self-collision"
	// DeathCauseInactivity is when the head stays put past the inactivity timeout
	DeathCauseInactivity = "inactivity"
)
