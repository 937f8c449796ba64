package response_models

type MessageRole string

const (
	RoleUser     MessageRole = "user"
	RoleBot      MessageRole = "bot"
	RoleThinking MessageRole = "thinking"
)

// ChatMessage lives only in memory for the duration of the chat session;
// the transcript is never persisted.
type ChatMessage struct {
	ID              string      `json:"id"`
	Role            MessageRole `json:"role"`
	Text            string      `json:"text"`
	Confidence      int         `json:"confidence,omitempty"`
	Urgency         Urgency     `json:"urgency,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
	DoctorInfo      *DoctorInfo `json:"doctorInfo,omitempty"`
}
