package ledger

import (
	"fmt"
	"strings"
)

// AccountScope represents the top-level account namespace
type AccountScope uint8

const (
	AccountScopeUser AccountScope = iota
	AccountScopeApp
	AccountScopeSystem
)

// AccountSubType represents the account purpose
type AccountSubType uint8

const (
	// User sub-types
	SubTypeBalance AccountSubType = iota
	SubTypeDailyEarnings
	SubTypeWeeklyEarnings
	SubTypeMonthlyEarnings

	// App sub-types
	SubTypeTotalBet
	SubTypeContribution

	// System sub-types
	SubTypeSystemPool
)

// AccountKey is the in-memory key for balance tracking.
// EntityID is a normalized address for user accounts, an application id
// for app accounts, and empty for system registers.
type AccountKey struct {
	Scope    AccountScope
	EntityID string
	SubType  AccountSubType
}

// NewUserAccountKey creates a key for user accounts
func NewUserAccountKey(owner string, subType AccountSubType) AccountKey {
	return AccountKey{
		Scope:    AccountScopeUser,
		EntityID: owner,
		SubType:  subType,
	}
}

// NewAppAccountKey creates a key for per-application registers
func NewAppAccountKey(appID string, subType AccountSubType) AccountKey {
	return AccountKey{
		Scope:    AccountScopeApp,
		EntityID: appID,
		SubType:  subType,
	}
}

// PoolAccountKey returns the key of the global reward pool register
func PoolAccountKey() AccountKey {
	return AccountKey{
		Scope:   AccountScopeSystem,
		SubType: SubTypeSystemPool,
	}
}

// AccountPath returns the string representation for storage/logging
func (k AccountKey) AccountPath() string {
	switch k.Scope {
	case AccountScopeUser:
		return fmt.Sprintf("user:%s:%s", k.EntityID, k.subTypeName())
	case AccountScopeApp:
		return fmt.Sprintf("app:%s:%s", k.EntityID, k.subTypeName())
	case AccountScopeSystem:
		return fmt.Sprintf("system:%s", k.subTypeName())
	}
	return "unknown"
}

// ParseAccountPath inverts AccountPath for snapshot restore. Unknown
// paths map to the zero key; callers only feed paths this package wrote.
func ParseAccountPath(path string) AccountKey {
	parts := strings.Split(path, ":")

	switch {
	case len(parts) == 2 && parts[0] == "system":
		return PoolAccountKey()
	case len(parts) == 3 && parts[0] == "user":
		return NewUserAccountKey(parts[1], subTypeFromName(parts[2]))
	case len(parts) == 3 && parts[0] == "app":
		return NewAppAccountKey(parts[1], subTypeFromName(parts[2]))
	}
	return AccountKey{}
}

func subTypeFromName(name string) AccountSubType {
	switch name {
	case "balance":
		return SubTypeBalance
	case "daily_earnings":
		return SubTypeDailyEarnings
	case "weekly_earnings":
		return SubTypeWeeklyEarnings
	case "monthly_earnings":
		return SubTypeMonthlyEarnings
	case "total_bet":
		return SubTypeTotalBet
	case "contribution":
		return SubTypeContribution
	case "pool":
		return SubTypeSystemPool
	}
	return SubTypeBalance
}

func (k AccountKey) subTypeName() string {
	switch k.SubType {
	case SubTypeBalance:
		return "balance"
	case SubTypeDailyEarnings:
		return "daily_earnings"
	case SubTypeWeeklyEarnings:
		return "weekly_earnings"
	case SubTypeMonthlyEarnings:
		return "monthly_earnings"
	case SubTypeTotalBet:
		return "total_bet"
	case SubTypeContribution:
		return "contribution"
	case SubTypeSystemPool:
		return "pool"
	default:
		return "unknown"
	}
}
