package game

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-classic/internal/mines"
)

// DifficultyNames lists the accepted difficulty names, easiest first.
var DifficultyNames = []string{"easy", "medium", "hard"}

var presets = map[string]mines.Difficulty{
	"easy":   mines.Easy,
	"medium": mines.Medium,
	"hard":   mines.Hard,
}

var ErrUnknownDifficulty error

func init() {
	quoted := make([]string, len(DifficultyNames))
	for i, name := range DifficultyNames {
		quoted[i] = "'" + name + "'"
	}
	ErrUnknownDifficulty = fmt.Errorf(
		"difficulty must be one of %s", strings.Join(quoted, ", "),
	)
}

func ParseDifficulty(name string) (mines.Difficulty, error) {
	d, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return mines.Difficulty{}, ErrUnknownDifficulty
	}
	return d, nil
}

// DifficultyName is the inverse of [ParseDifficulty]. Sizes that match no
// preset are reported as "custom".
func DifficultyName(d mines.Difficulty) string {
	for _, name := range DifficultyNames {
		if presets[name] == d {
			return name
		}
	}
	return "custom"
}
