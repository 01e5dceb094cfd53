package domain

import "time"

// PackageType identifies a purchasable session bundle
type PackageType string

const (
	PackageSingle PackageType = "single"
	Package8      PackageType = "package8"
	Package10     PackageType = "package10"
	Package12     PackageType = "package12"
)

// packageSessions maps each package type to its session count
var packageSessions = map[PackageType]int{
	PackageSingle: 1,
	Package8:      8,
	Package10:     10,
	Package12:     12,
}

// Valid returns true if the type is a known package type
func (t PackageType) Valid() bool {
	_, ok := packageSessions[t]
	return ok
}

// Sessions returns the number of sessions the package type grants
func (t PackageType) Sessions() int {
	return packageSessions[t]
}

// BookingKind returns the booking kind a session of this package produces
func (t PackageType) BookingKind() BookingKind {
	switch t {
	case Package8:
		return KindPackage8
	case Package10:
		return KindPackage10
	case Package12:
		return KindPackage12
	default:
		return KindSingle
	}
}

// PackageAccount is a customer's purchased session balance.
// RemainingSessions is always derived, never stored.
type PackageAccount struct {
	ID int64

	Name    string
	Surname string
	Mobile  string
	Email   string

	Type          PackageType
	TotalSessions int
	UsedSessions  int

	// ActivationCode is issued at purchase; the account is unusable
	// until an admin activates it
	ActivationCode string
	Activated      bool

	Payment PaymentStatus

	PurchasedAt time.Time
	ActivatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingSessions returns the derived balance, never negative
func (p *PackageAccount) RemainingSessions() int {
	remaining := p.TotalSessions - p.UsedSessions
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExhausted returns true if no sessions remain
func (p *PackageAccount) IsExhausted() bool {
	return p.RemainingSessions() == 0
}

// CanBook returns true if the account may be debited for a new booking
func (p *PackageAccount) CanBook() bool {
	return p.Activated && !p.IsExhausted()
}
