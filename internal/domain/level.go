package domain

// Proficiency levels. A card starts at UnansweredLevel and moves within
// MinLevel..MaxLevel once it has been answered.
const (
	UnansweredLevel = 0
	MinLevel        = 1
	MaxLevel        = 7

	// LevelCount is the number of configurable levels and the length of
	// every per-level array.
	LevelCount = MaxLevel
)

// IsValidLevel reports whether level lies in MinLevel..MaxLevel.
func IsValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// levelIndex maps a level to its index in a [LevelCount] array.
func levelIndex(level int) (int, bool) {
	if !IsValidLevel(level) {
		return 0, false
	}
	return level - MinLevel, true
}
