package response_models

import "catcare/internal/models/db_models"

// SubscriptionStatus is the eligibility snapshot derived from the active
// user record. It is recomputed on demand, never stored.
type SubscriptionStatus struct {
	SubscriptionType      db_models.SubscriptionType `json:"subscriptionType"`
	IsSubscribed          bool                       `json:"isSubscribed"`
	CanMakeAIRequest      bool                       `json:"canMakeAiRequest"`
	RemainingFreeRequests int                        `json:"remainingFreeRequests"`
	HasUsedFirstConsult   bool                       `json:"hasUsedFirstConsult"`
}
