package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Hard if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// Depth is the number of plies searched below each candidate move.
func (d BotDifficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	default:
		return DefaultDepth
	}
}

// NewEngineForDifficulty builds an engine searching at the difficulty's depth.
func NewEngineForDifficulty(difficulty string) *Engine {
	return NewEngine(ParseDifficulty(difficulty).Depth())
}
