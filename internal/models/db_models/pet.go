package db_models

const (
	MinPetAge = 0
	MaxPetAge = 30
)

// Pet belongs to exactly one owner, and each owner holds at most one pet;
// saving a pet replaces any existing record for the same owner.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
	OwnerID string `json:"ownerId"`
}
