// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// MergeOption chooses which replica wins when cloud sync is switched on.
// The losing replica is wiped and replaced; values are never merged per key.
type MergeOption string

const (
	KeepLocal MergeOption = "keepLocal"
	KeepCloud MergeOption = "keepCloud"
)

// Valid reports whether o is one of the declared options.
func (o MergeOption) Valid() bool {
	return o == KeepLocal || o == KeepCloud
}

// LastUpdateResult compares the lastUpdate stamps of the two replicas.
type LastUpdateResult int

const (
	LastUpdateError LastUpdateResult = iota
	LocalIsNewer
	CloudIsNewer
	CloudDoesNotExist
)

func (r LastUpdateResult) String() string {
	switch r {
	case LocalIsNewer:
		return "localIsNewer"
	case CloudIsNewer:
		return "cloudIsNewer"
	case CloudDoesNotExist:
		return "cloudDoesNotExist"
	case LastUpdateError:
		return "error"
	default:
		return fmt.Sprintf("LastUpdateResult(%d)", int(r))
	}
}

func (r LastUpdateResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// SyncStatus is returned by the sync endpoints.
type SyncStatus struct {
	Enabled    bool             `json:"enabled"`
	LastUpdate LastUpdateResult `json:"last_update"`
}
