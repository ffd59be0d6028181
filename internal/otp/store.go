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

package otp

import (
	"sync"
	"time"
)

// ChallengeStoreInterface defines the persistence contract for outstanding challenges.
// Implementations must keep at most one challenge per (identifier, purpose) pair.
type ChallengeStoreInterface interface {
	// Put stores or replaces the challenge for its (identifier, purpose) pair.
	Put(challenge Challenge) error
	// Get returns the live challenge for the pair, or nil when none exists or it expired.
	Get(identifier string, purpose Purpose) (*Challenge, error)
	// Delete removes the challenge for the pair.
	Delete(identifier string, purpose Purpose) error
}

// inMemoryChallengeStore is a process-local challenge store with lazy expiry.
type inMemoryChallengeStore struct {
	mu         sync.RWMutex
	challenges map[string]Challenge
}

// NewInMemoryChallengeStore creates a new in-memory challenge store.
func NewInMemoryChallengeStore() ChallengeStoreInterface {
	return &inMemoryChallengeStore{
		challenges: make(map[string]Challenge),
	}
}

func challengeKey(identifier string, purpose Purpose) string {
	return string(purpose) + ":" + identifier
}

// Put stores or replaces the challenge for its (identifier, purpose) pair.
func (s *inMemoryChallengeStore) Put(challenge Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challengeKey(challenge.Identifier, challenge.Purpose)] = challenge
	return nil
}

// Get returns the live challenge for the pair, or nil when none exists or it expired.
func (s *inMemoryChallengeStore) Get(identifier string, purpose Purpose) (*Challenge, error) {
	s.mu.RLock()
	challenge, ok := s.challenges[challengeKey(identifier, purpose)]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(challenge.ExpiresAt) {
		// Expired entries are removed on first observation.
		s.mu.Lock()
		delete(s.challenges, challengeKey(identifier, purpose))
		s.mu.Unlock()
		return nil, nil
	}
	return &challenge, nil
}

// Delete removes the challenge for the pair.
func (s *inMemoryChallengeStore) Delete(identifier string, purpose Purpose) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, challengeKey(identifier, purpose))
	return nil
}
