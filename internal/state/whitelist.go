package state

import (
	"sort"
	"strings"
)

// BootstrapAdminAddress is whitelisted at genesis alongside the operator.
const BootstrapAdminAddress = "0xa0916f957038344afff8c117b0a568562f73f0f2"

// Whitelist is the set of addresses authorized for admin operations.
// Keys are lowercased; ACL loading is a deployment concern, so the set is
// seeded at genesis and mutated only by snapshot restore.
type Whitelist struct {
	members map[string]bool
}

func NewWhitelist() *Whitelist {
	return &Whitelist{
		members: make(map[string]bool),
	}
}

// NormalizeAddress lowercases an address for whitelist and ledger keys
func NormalizeAddress(addr string) string {
	return strings.ToLower(addr)
}

// Seed adds addresses (normalized) to the set
func (w *Whitelist) Seed(addrs ...string) {
	for _, addr := range addrs {
		if addr == "" {
			continue
		}
		w.members[NormalizeAddress(addr)] = true
	}
}

// Contains reports membership for a (possibly unnormalized) address
func (w *Whitelist) Contains(addr string) bool {
	return w.members[NormalizeAddress(addr)]
}

// All returns the members sorted (for snapshots and queries)
func (w *Whitelist) All() []string {
	result := make([]string, 0, len(w.members))
	for addr := range w.members {
		result = append(result, addr)
	}
	sort.Strings(result)
	return result
}
