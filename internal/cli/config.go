package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	AdminKey   string
	PlayerFile string
	Output     string
	Verbose    bool
	PlayerID   string
	PlayerName string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("SCROLLHUNT_SERVER", "http://localhost:8080"),
		AdminKey:   os.Getenv("SCROLLHUNT_ADMIN_KEY"),
		PlayerFile: getEnvOrDefault("SCROLLHUNT_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// savedPlayer is the on-disk format of the cached player identity
type savedPlayer struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// LoadPlayer loads the cached player identity from file if not already set
func (c *Config) LoadPlayer() error {
	if c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No cached player is fine
		}
		return err
	}

	var saved savedPlayer
	if err := json.Unmarshal(data, &saved); err != nil {
		return err
	}

	c.PlayerID = saved.PlayerID
	c.PlayerName = saved.Name
	return nil
}

// SavePlayer caches the player identity to the player file
func (c *Config) SavePlayer(playerID, name string) error {
	c.PlayerID = playerID
	c.PlayerName = name

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(savedPlayer{PlayerID: playerID, Name: name})
	if err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, data, 0600)
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrollhunt/player"
	}
	return filepath.Join(home, ".scrollhunt", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
