package uid

import "github.com/google/uuid"

// GenerateGameID returns a random ID for one game.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateRunID identifies one arena run. Game IDs of that run are logged
// alongside it.
func GenerateRunID() string {
	return "run_" + uuid.NewString()[:8]
}
