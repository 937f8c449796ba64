package response_models

import "time"

type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// DoctorInfo identifies a referred specialist, either attached to an
// escalated advice response or listed in the doctor directory.
type DoctorInfo struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Location  string  `json:"location"`
	Rating    float64 `json:"rating"`
}

// AIResponse is the canned advice record returned by the responder.
// Confidence is a 0-100 score; RequiresDoctor marks an escalation, in which
// case DoctorInfo carries the referred specialist.
type AIResponse struct {
	Text            string      `json:"text"`
	Confidence      int         `json:"confidence"`
	Urgency         Urgency     `json:"urgency"`
	Recommendations []string    `json:"recommendations"`
	RequiresDoctor  bool        `json:"requiresDoctor,omitempty"`
	DoctorInfo      *DoctorInfo `json:"doctorInfo,omitempty"`
}

// ThinkingStep is one stage of the simulated reasoning animation: a status
// message held on screen for the given duration.
type ThinkingStep struct {
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}
