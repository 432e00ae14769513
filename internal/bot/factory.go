package bot

import (
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NewBrain creates a new AI brain based on the specified level. logger may
// be nil; logLevel gates the engine's decision traces.
func NewBrain(level BotLevel, logger runtime.Logger, logLevel int) (Brain, error) {
	switch level {
	case BotLevelEasy:
		return &EasyBot{Logger: logger, LogLevel: logLevel}, nil
	case BotLevelStandard:
		return &StandardBot{Logger: logger, LogLevel: logLevel}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
