package config

import (
	"os"
	"strconv"
)

// Config carries every knob the services need, loaded once in main and
// passed into constructors. Nothing in this codebase reads the
// environment after startup.
type Config struct {
	ServerPort         int    `json:"server_port"`
	JWTSecretKey       string `json:"jwt_secret_key"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
	DefaultRateLimit   int    `json:"default_rate_limit"`
	GlobalRateLimit    int    `json:"global_rate_limit"`

	// Scheduling knobs. The availability probe treats two appointments
	// as conflicting when their start times are closer than
	// AvailabilityWindowMins, independent of service duration; the
	// next-open scan advances in SlotStepMins increments.
	AvailabilityWindowMins int `json:"availability_window_mins"`
	SlotStepMins           int `json:"slot_step_mins"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 600 // per tenant per minute
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 6000 // per IP per minute
	}

	availabilityWindow, _ := strconv.Atoi(os.Getenv("AVAILABILITY_WINDOW_MINS"))
	if availabilityWindow == 0 {
		availabilityWindow = 120
	}

	slotStep, _ := strconv.Atoi(os.Getenv("SLOT_STEP_MINS"))
	if slotStep == 0 {
		slotStep = 30
	}

	return &Config{
		ServerPort:             serverPort,
		JWTSecretKey:           os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours:     jwtExpirationHours,
		DefaultRateLimit:       defaultRateLimit,
		GlobalRateLimit:        globalRateLimit,
		AvailabilityWindowMins: availabilityWindow,
		SlotStepMins:           slotStep,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
