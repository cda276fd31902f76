package core

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration values for a photo-set session.
// It is constructed once by LoadConfig and passed into every component;
// no package keeps its own mutable configuration state.
type Config struct {
	// GoogleAPIKey authenticates to the Gemini API (required)
	GoogleAPIKey string

	// ReferenceFacePath is the reference face image used for every master request
	ReferenceFacePath string

	// PromptsDir is the directory scanned for .txt prompt files
	PromptsDir string

	// OutputRoot is the root directory for per-prompt run directories
	OutputRoot string

	// PosesFile optionally overrides the built-in pose list (YAML).
	// Empty means use the built-in list.
	PosesFile string

	// MasterFilename is the file name of the master concept image in a run directory
	MasterFilename string

	// PoseDelay is the pause after every pose attempt, successful or not
	PoseDelay time.Duration

	// RequestTimeout bounds a single generate-content call
	RequestTimeout time.Duration

	// LogFilePath is the structured log destination
	LogFilePath string

	// DevMode enables debug-level, human-readable console logging
	DevMode bool
}

// LoadConfig builds a Config from environment variables with defaults for
// everything except the API key. A missing GOOGLE_API_KEY is a fatal startup
// condition and surfaces here as an error.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not set (check your environment or .env file)")
	}

	return &Config{
		GoogleAPIKey:      apiKey,
		ReferenceFacePath: GetEnvOrDefault("REFERENCE_FACE_PATH", "reference_face.jpg"),
		PromptsDir:        GetEnvOrDefault("PROMPTS_DIR", "prompts"),
		OutputRoot:        GetEnvOrDefault("OUTPUT_DIR", "output"),
		PosesFile:         os.Getenv("POSES_FILE"),
		MasterFilename:    GetEnvOrDefault("MASTER_FILENAME", "00_MASTER_CONCEPT.png"),
		PoseDelay:         ParseDurationEnv("POSE_DELAY_SECONDS", 2),
		RequestTimeout:    ParseDurationEnv("REQUEST_TIMEOUT_SECONDS", 600),
		LogFilePath:       GetEnvOrDefault("LOG_FILE", "photoset.log"),
		DevMode:           ParseBoolEnv("DEV_MODE", false),
	}, nil
}
