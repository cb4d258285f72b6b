package constants

// AppName is the application name, used for config paths and the OS keyring
// service identifier.
const AppName = "wellbee"

// DefaultKeyringUser is the keyring account name under which the chat API key
// is stored.
const DefaultKeyringUser = "chat-api-key"

// DateFormat is the canonical date-key format (YYYY-MM-DD) for day-scoped state.
const DateFormat = "2006-01-02"

// TimeFormat is the standard display time format (HH:MM).
const TimeFormat = "15:04"

const (
	// TrialDays is the length of the free trial in days.
	TrialDays = 30

	// MaxCheatDaysPerMonth caps cheat day usage per calendar month.
	MaxCheatDaysPerMonth = 2
)

// Feature names understood by the trial/subscription gate.
const (
	FeatureChat      = "chat"
	FeatureDashboard = "dashboard"
)

// Chat defaults.
const (
	DefaultChatEndpoint = "https://ai.gateway.lovable.dev/v1/chat/completions"
	DefaultChatModel    = "google/gemini-3-flash-preview"

	// ChatHistoryWindow is how many transcript messages are sent with each
	// request for context.
	ChatHistoryWindow = 10
)

// ChatAPIKeyEnv is the environment variable consulted for the chat API key
// before falling back to the OS keyring.
const ChatAPIKeyEnv = "WELLBEE_API_KEY"
