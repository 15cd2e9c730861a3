package uid

import "github.com/google/uuid"

// GenerateGameID returns a unique ID for one game.
func GenerateGameID() string {
	return uuid.NewString()
}
