// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
)

// EventType - kind of registry change
type EventType int

// registry events
const (
	RecordAdded EventType = iota
	RecordUpdated
	RecordRemoved
)

// Event - describes a completed registry change
type Event struct {
	Type EventType `json:"type"`
	Old  *Record   `json:"old,omitempty"`
	New  *Record   `json:"new,omitempty"`
}

func (t EventType) String() string {
	switch t {
	case RecordAdded:
		return "RecordAdded"
	case RecordUpdated:
		return "RecordUpdated"
	case RecordRemoved:
		return "RecordRemoved"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// MarshalText - event type as its name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (e *Event) String() string {
	switch e.Type {
	case RecordAdded:
		return fmt.Sprintf("%s: id: %q  balance: %d", e.Type, e.New.Id, e.New.Balance)
	case RecordUpdated:
		return fmt.Sprintf("%s: id: %q  name: %q -> %q  company: %q -> %q  dob: %s -> %s",
			e.Type, e.New.Id,
			e.Old.Name, e.New.Name,
			e.Old.Company, e.New.Company,
			e.Old.DateOfBirth, e.New.DateOfBirth)
	case RecordRemoved:
		return fmt.Sprintf("%s: id: %q", e.Type, e.Old.Id)
	default:
		return e.Type.String()
	}
}
