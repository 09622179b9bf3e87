package domain

const (
	// PointsPerPlayer scales the attackers' winning threshold: a table of n
	// players hides 20*n points behind the defenders.
	PointsPerPlayer = 20
	// LevelBandPoints is the width of one level band when settling a round.
	LevelBandPoints = 40
)
