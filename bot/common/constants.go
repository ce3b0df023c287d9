package common

// Discord color constants
const (
	ColorBoost   = 0x9B59B6 // Purple
	ColorSuccess = 0x57F287 // Green
	ColorError   = 0xED4245 // Red
)

// UI constants
const (
	MaxSelectOptions = 25
	MaxEmbedFields   = 25
)

// Audit log reasons for reward role changes
const (
	ReasonStartedBoosting = "Started boosting"
	ReasonStoppedBoosting = "Stopped boosting"
)
