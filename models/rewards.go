package models

// GrantReason tags event-based reward grants.
type GrantReason string

const (
	GrantOrderPlaced GrantReason = "order_placed"
	GrantSignupBonus GrantReason = "signup_bonus"
	GrantReferral    GrantReason = "referral"
)

// RewardsAccount is a session's point balance as returned to the
// client. The balance itself lives in the rewards store.
type RewardsAccount struct {
	SessionID string `json:"sessionId"`
	Balance   int64  `json:"balance"`
}
