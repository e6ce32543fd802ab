// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/binary"
	"reflect"
	"strconv"
	"sync"
)

// BlockCommand - sent after a block is committed, parameter is the
// big endian height
const BlockCommand = "block"

// Message - a command with its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - every listener receives every message sent after it
// started listening
//
// a listener whose buffer is full misses the message
type BroadcastQueue struct {
	sync.RWMutex
	listeners   []chan Message
	defaultSize int
}

// the exported queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Broadcast *BroadcastQueue `size:"100"`
}

// Bus - all queues
var Bus busses

// create all queues from the size tags
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {
		fieldInfo := busType.Field(i)
		size, err := strconv.Atoi(fieldInfo.Tag.Get("size"))
		if nil != err || size <= 0 {
			panic("messagebus: invalid size tag on: " + fieldInfo.Name)
		}
		q := &BroadcastQueue{
			defaultSize: size,
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - deliver a message to all current listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
		}
	}
}

// SendHeight - announce a committed height
func (queue *BroadcastQueue) SendHeight(height uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, height)
	queue.Send(BlockCommand, buffer)
}

// Chan - create a new listener, size zero selects the default buffer
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queue.defaultSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - stop delivery to a listener and close its channel
func (queue *BroadcastQueue) Release(listener <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, c := range queue.listeners {
		if (<-chan Message)(c) == listener {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(c)
			return
		}
	}
}

// Height - decode the height of a block message
func (m Message) Height() (uint64, bool) {
	if BlockCommand != m.Command || 1 != len(m.Parameters) || 8 != len(m.Parameters[0]) {
		return 0, false
	}
	return binary.BigEndian.Uint64(m.Parameters[0]), true
}
