package db_models

type CallStatus string

const (
	CallCompleted CallStatus = "completed"
	CallMissed    CallStatus = "missed"
	CallScheduled CallStatus = "scheduled"
)

// DoctorCall is a consultation history entry shown to doctor accounts. The
// collection is seeded once with demo records when empty.
type DoctorCall struct {
	ID          string     `json:"id"`
	PatientName string     `json:"patientName"`
	PetName     string     `json:"petName"`
	PetBreed    string     `json:"petBreed"`
	CallDate    string     `json:"callDate"`
	CallTime    string     `json:"callTime"`
	Status      CallStatus `json:"status"`
	Duration    string     `json:"duration,omitempty"`
}
