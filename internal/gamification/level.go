// Package gamification holds the pure XP, level, rank and league rules.
// Nothing here keeps state; every value is recomputed from its input.
package gamification

import "math"

const xpPerLevelUnit = 100

// Level is floor(sqrt(xp/100)) + 1. Negative xp counts as zero.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	n := int(math.Sqrt(float64(xp) / xpPerLevelUnit))
	// correct float drift at perfect squares
	for LevelThreshold(n+2) <= xp {
		n++
	}
	for n > 0 && LevelThreshold(n+1) > xp {
		n--
	}
	return n + 1
}

// LevelThreshold is the xp at which level starts: 100*(level-1)^2.
func LevelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return xpPerLevelUnit * (level - 1) * (level - 1)
}

// LevelProgressPercent interpolates xp between the current and next level thresholds, clamped to [0,100].
func LevelProgressPercent(xp int) float64 {
	level := Level(xp)
	current := LevelThreshold(level)
	next := LevelThreshold(level + 1)
	pct := float64(xp-current) / float64(next-current) * 100
	return math.Max(0, math.Min(100, pct))
}

// Title is the cosmetic label for a level.
func Title(level int) string {
	switch {
	case level >= 50:
		return "Grandmaster of English"
	case level >= 20:
		return "Language Archmage"
	case level >= 10:
		return "Grammar Knight"
	case level >= 5:
		return "Sentence Builder"
	default:
		return "Novice Learner"
	}
}
