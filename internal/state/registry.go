package state

import (
	"fmt"
	"sort"
)

// AppInfo is admin-managed application metadata. Presence in the registry
// is what qualifies an application for settlement rewards.
type AppInfo struct {
	AppID       string
	Name        string
	Description string
	AddedAtUs   int64
	IsActive    bool
}

// AppRegistry manages application metadata records
type AppRegistry struct {
	apps map[string]*AppInfo
}

func NewAppRegistry() *AppRegistry {
	return &AppRegistry{
		apps: make(map[string]*AppInfo),
	}
}

// Get returns the info record or nil
func (ar *AppRegistry) Get(appID string) *AppInfo {
	return ar.apps[appID]
}

// Exists reports whether an info record is present
func (ar *AppRegistry) Exists(appID string) bool {
	_, ok := ar.apps[appID]
	return ok
}

// Add creates a new record; duplicate ids are rejected
func (ar *AppRegistry) Add(appID, name, description string, addedAtUs int64) error {
	if _, ok := ar.apps[appID]; ok {
		return fmt.Errorf("application %s already registered", appID)
	}

	ar.apps[appID] = &AppInfo{
		AppID:       appID,
		Name:        name,
		Description: description,
		AddedAtUs:   addedAtUs,
		IsActive:    true,
	}
	return nil
}

// Remove deletes the info record only. Bets, totals, and contributions for
// the id persist; a removed app keeps ranking until naturally drained but
// no longer qualifies for rewards.
func (ar *AppRegistry) Remove(appID string) error {
	if _, ok := ar.apps[appID]; !ok {
		return fmt.Errorf("application %s not registered", appID)
	}
	delete(ar.apps, appID)
	return nil
}

// All returns every record sorted by application id
func (ar *AppRegistry) All() []*AppInfo {
	result := make([]*AppInfo, 0, len(ar.apps))
	for _, info := range ar.apps {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AppID < result[j].AppID
	})
	return result
}

// Restore directly sets a record (used for snapshot restore)
func (ar *AppRegistry) Restore(info *AppInfo) {
	ar.apps[info.AppID] = info
}
