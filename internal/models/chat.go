package models

// ChatRole is the speaker of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the running assistant transcript.
type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatContext is the snapshot of engine facts handed to the assistant with
// every request. The engine supplies it; it never consumes chat content.
type ChatContext struct {
	UserName        string `json:"userName"`
	Goal            string `json:"goal"`
	ActivityLevel   string `json:"activityLevel"`
	WakeUpTime      string `json:"wakeUpTime"`
	BedTime         string `json:"bedTime"`
	WaterIntake     int    `json:"waterIntake"`
	WorkoutName     string `json:"workoutName"`
	WorkoutDuration int    `json:"workoutDuration"`
}
