// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/util"
)

// Date - a calendar date
type Date struct {
	Day   uint8  `json:"day"`
	Month uint8  `json:"month"`
	Year  uint16 `json:"year"`
}

// Record - a registered person and their token balance
type Record struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	DateOfBirth Date   `json:"dateOfBirth"`
	Balance     uint64 `json:"balance,string"`
}

// Arguments - the caller supplied part of a record
type Arguments struct {
	Id          string
	Name        string
	Company     string
	DateOfBirth Date
}

// String - dd-mm-yyyy
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// ParseDate - read the dd-mm-yyyy form
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("02-01-2006", s)
	if nil != err {
		return Date{}, fault.ErrInvalidDate
	}
	return Date{
		Day:   uint8(t.Day()),
		Month: uint8(t.Month()),
		Year:  uint16(t.Year()),
	}, nil
}

// IsValid - true for a date that exists in the calendar
func (d Date) IsValid() bool {
	if 0 == d.Year || d.Month < 1 || d.Month > 12 || 0 == d.Day {
		return false
	}
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	return t.Day() == int(d.Day) && t.Month() == time.Month(d.Month)
}

// check the caller supplied fields
func (args Arguments) validate() error {
	if 0 == len(args.Id) {
		return fault.ErrMissingIdentity
	}
	if len(args.Id) > constants.MaximumIdentityLength ||
		len(args.Name) > constants.MaximumNameLength ||
		len(args.Company) > constants.MaximumNameLength {
		return fault.ErrTooLong
	}
	if !args.DateOfBirth.IsValid() {
		return fault.ErrInvalidDate
	}
	return nil
}

// pack - id ++ name ++ company ++ day ++ month ++ year ++ balance
func (r *Record) pack() []byte {
	buffer := util.AppendBytes(nil, []byte(r.Id))
	buffer = util.AppendBytes(buffer, []byte(r.Name))
	buffer = util.AppendBytes(buffer, []byte(r.Company))
	buffer = append(buffer, r.DateOfBirth.Day, r.DateOfBirth.Month, 0, 0)
	binary.BigEndian.PutUint16(buffer[len(buffer)-2:], r.DateOfBirth.Year)
	return util.AppendVarint64(buffer, r.Balance)
}

// unpack - reverse of pack
func unpack(buffer []byte) (*Record, error) {
	fields := make([][]byte, 3)
	limits := []int{constants.MaximumIdentityLength, constants.MaximumNameLength, constants.MaximumNameLength}

	n := 0
	for i := range fields {
		data, count := util.ReadBytes(buffer[n:], limits[i])
		if 0 == count {
			return nil, fault.ErrInvalidRecord
		}
		fields[i] = data
		n += count
	}

	if len(buffer) < n+4 {
		return nil, fault.ErrInvalidRecord
	}
	dob := Date{
		Day:   buffer[n],
		Month: buffer[n+1],
		Year:  binary.BigEndian.Uint16(buffer[n+2 : n+4]),
	}
	n += 4

	balance, count := util.FromVarint64(buffer[n:])
	if 0 == count || n+count != len(buffer) {
		return nil, fault.ErrInvalidRecord
	}

	return &Record{
		Id:          string(fields[0]),
		Name:        string(fields[1]),
		Company:     string(fields[2]),
		DateOfBirth: dob,
		Balance:     balance,
	}, nil
}
