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

package handler

import (
	"sync"
	"time"

	"github.com/asgardeo/phoneauth/internal/authn/phoneform"
	"github.com/asgardeo/phoneauth/internal/system/utils"
)

// defaultSessionTTL bounds how long an unfinished login flow is kept alive.
const defaultSessionTTL = 10 * time.Minute

// SessionStoreInterface manages the server-held authentication sessions across
// challenge round trips.
type SessionStoreInterface interface {
	// GetOrCreate returns the session for the given id, creating a fresh one
	// when the id is empty or unknown or the session expired.
	GetOrCreate(sessionID string) *phoneform.AuthSession
	// Get returns the live session for the id, or nil.
	Get(sessionID string) *phoneform.AuthSession
	// Delete removes the session for the id.
	Delete(sessionID string)
}

type sessionEntry struct {
	session   *phoneform.AuthSession
	expiresAt time.Time
}

// inMemorySessionStore is a process-local session store with lazy expiry.
type inMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

// NewSessionStore creates a new in-memory session store with the default TTL.
func NewSessionStore() SessionStoreInterface {
	return &inMemorySessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      defaultSessionTTL,
	}
}

// GetOrCreate returns the live session for the id or creates a fresh one.
func (s *inMemorySessionStore) GetOrCreate(sessionID string) *phoneform.AuthSession {
	if sessionID != "" {
		if session := s.Get(sessionID); session != nil {
			return session
		}
	}

	session := &phoneform.AuthSession{
		ID: utils.GenerateUUID(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return session
}

// Get returns the live session for the id, or nil.
func (s *inMemorySessionStore) Get(sessionID string) *phoneform.AuthSession {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		s.Delete(sessionID)
		return nil
	}
	return entry.session
}

// Delete removes the session for the id.
func (s *inMemorySessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
