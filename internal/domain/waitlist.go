package domain

import "time"

// WaitlistStatus lifecycle of a waitlist entry
type WaitlistStatus string

const (
	WaitlistPending  WaitlistStatus = "pending"
	WaitlistInvited  WaitlistStatus = "invited"
	WaitlistRedeemed WaitlistStatus = "redeemed"
)

// WaitlistEntry is a referral waitlist signup. An invited entry carries a
// redemption code; redeeming it at purchase time credits one bonus session.
type WaitlistEntry struct {
	ID             int64
	Email          string
	RedemptionCode string
	Status         WaitlistStatus

	CreatedAt  time.Time
	InvitedAt  *time.Time
	RedeemedAt *time.Time
}

// CanRedeem returns true if the entry's code may still be redeemed
func (w *WaitlistEntry) CanRedeem() bool {
	return w.Status == WaitlistInvited
}
