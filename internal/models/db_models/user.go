package db_models

import "time"

type UserType string

const (
	UserTypePetOwner UserType = "pet_owner"
	UserTypeDoctor   UserType = "doctor"
)

type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "free"
	SubscriptionMonthly SubscriptionType = "monthly"
	SubscriptionYearly  SubscriptionType = "yearly"
)

// Subscription is embedded in the User record. ExpiresAt is nil for the free
// tier, which never expires.
type Subscription struct {
	Type      SubscriptionType `json:"type"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	IsActive  bool             `json:"isActive"`
}

// Usage tracks consumption of the free AI-request quota and the one-time
// first-consult discount flag.
type Usage struct {
	AIRequests           int       `json:"aiRequests"`
	FreeRequestsUsed     int       `json:"freeRequestsUsed"`
	LastFreeRequestReset time.Time `json:"lastFreeRequestReset"`
	HasUsedFirstConsult  bool      `json:"hasUsedFirstConsult"`
}

// User is the persisted account record. Usernames are unique across the
// collection; uniqueness is enforced at registration, not at this layer.
// Passwords are stored only as bcrypt hashes.
type User struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	PasswordHash string        `json:"passwordHash"`
	Name         string        `json:"name"`
	Type         UserType      `json:"type"`
	CreatedAt    time.Time     `json:"createdAt"`
	Subscription *Subscription `json:"subscription,omitempty"`
	Usage        *Usage        `json:"usage,omitempty"`
}
