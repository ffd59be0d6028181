/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package event

import (
	"sync"
	"time"

	"github.com/asgardeo/phoneauth/internal/system/log"
)

const dispatcherComponentName = "EventDispatcher"

const defaultQueueSize = 256

// Dispatcher delivers audit events to a sink asynchronously. Record never blocks
// the authentication path; events are dropped when the queue is full.
type Dispatcher struct {
	sink    SinkInterface
	queue   chan AuditEvent
	done    chan struct{}
	once    sync.Once
	closed  bool
	dropped int64
	mu      sync.Mutex
}

// NewDispatcher creates and starts a dispatcher delivering to the given sink.
func NewDispatcher(sink SinkInterface) *Dispatcher {
	if sink == nil {
		sink = NoOpSink{}
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan AuditEvent, defaultQueueSize),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Record enqueues the event for delivery. Events with a zero timestamp are
// stamped here. Events recorded after Close are discarded.
func (d *Dispatcher) Record(event AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// The lock also orders Record against Close so the enqueue can never race
	// the queue being closed.
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	select {
	case d.queue <- event:
		d.mu.Unlock()
		return
	default:
	}
	d.dropped++
	dropped := d.dropped
	d.mu.Unlock()

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, dispatcherComponentName))
	logger.Warn("Audit event dropped, queue full", log.Int("totalDropped", int(dropped)))
}

// Dropped returns the number of events dropped due to a full queue.
func (d *Dispatcher) Dropped() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Close stops the dispatcher after draining queued events.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for event := range d.queue {
		d.sink.Emit(event)
	}
}
