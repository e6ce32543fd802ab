// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

type tagType byte

// record types in cache file
const (
	taggedBOF         tagType = iota
	taggedEOF         tagType = iota
	taggedTransaction tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("oracle-cache v1.0")

// maximum record size, fits the two byte length
const maximumRecordLength = 65535

// LoadFromFile - re-submit the pending items saved by a previous run
//
// each item is validated again against the current ledger, items that
// are no longer valid are logged and skipped
func (r *Reservoir) LoadFromFile() (int, error) {
	log := r.log

	if "" == r.filename {
		return 0, nil
	}

	f, err := os.Open(r.filename)
	if os.IsNotExist(err) {
		log.Infof("no cache file: %s", r.filename)
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	defer f.Close()

	// must have BOF record first
	tag, packed, err := readRecord(f)
	if nil != err {
		return 0, err
	}

	if taggedBOF != tag {
		return 0, fmt.Errorf("expected BOF: %d but read: %d", taggedBOF, tag)
	}

	if !bytes.Equal(bofData, packed) {
		return 0, fmt.Errorf("expected BOF: %q but read: %q", bofData, packed)
	}

	log.Infof("restore from file: %s", r.filename)

	n := 0
restore_loop:
	for {
		tag, packed, err := readRecord(f)
		if nil != err {
			return n, err
		}
		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedTransaction:
			unpacked, _, err := packed.Unpack(r.params.Testing)
			if nil != err {
				log.Errorf("unable to unpack submission: %s", err)
				continue restore_loop
			}

			switch tx := unpacked.(type) {
			case *transactionrecord.PriceUnsigned:
				_, _, err = r.StoreUnsigned(tx)
			case *transactionrecord.PriceSigned:
				_, _, err = r.StoreSigned(tx)
			default:
				err = fault.ErrUnknownTransactionType
			}
			if nil != err {
				log.Warnf("skip restored submission: %s", err)
				continue restore_loop
			}
			n += 1

		default:
			log.Errorf("read invalid tag: 0x%02x", tag)
			return n, fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}
	log.Infof("restore completed: %d items", n)
	return n, nil
}

// save pending submissions to file in arrival order
func (r *Reservoir) saveToFile() error {
	r.RLock()
	defer r.RUnlock()

	log := r.log

	log.Info("saving…")

	items := make([]*pendingItem, 0, len(r.entries))
	for _, item := range r.entries {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].sequence < items[j].sequence
	})

	f, err := os.OpenFile(r.filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	// write beginning of file marker
	err = writeRecord(f, taggedBOF, bofData)
	if nil != err {
		return err
	}

	for _, item := range items {
		err := writeRecord(f, taggedTransaction, item.packed)
		if nil != err {
			return err
		}
	}

	// end the file
	err = writeRecord(f, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}

	log.Infof("save completed: %d items", len(items))
	return nil
}

// write a tagged record
func writeRecord(f io.Writer, tag tagType, packed []byte) error {

	if len(packed) > maximumRecordLength {
		fault.Panicf("write record packed length: %d > %d", len(packed), maximumRecordLength)
	}

	_, err := f.Write([]byte{byte(tag)})
	if nil != err {
		return err
	}

	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(packed)))
	_, err = f.Write(count)
	if nil != err {
		return err
	}
	_, err = f.Write(packed)
	return err
}

func readRecord(f io.Reader) (tagType, transactionrecord.Packed, error) {

	tag := make([]byte, 1)
	_, err := io.ReadFull(f, tag)
	if nil != err {
		return taggedEOF, []byte{}, err
	}

	countBuffer := make([]byte, 2)
	_, err = io.ReadFull(f, countBuffer)
	if nil != err {
		return taggedEOF, []byte{}, fmt.Errorf("read record count: %s", err)
	}

	count := int(binary.BigEndian.Uint16(countBuffer))

	if count > 0 {
		buffer := make([]byte, count)
		_, err := io.ReadFull(f, buffer)
		if nil != err {
			return taggedEOF, []byte{}, fmt.Errorf("read record data: %s", err)
		}
		return tagType(tag[0]), buffer, nil
	}
	return tagType(tag[0]), []byte{}, nil
}
