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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/phoneauth/internal/system/config"
)

const redisKeyPrefix = "phoneauth:otp:"

// redisChallengeStore is a redis-backed challenge store with TTL-based expiry.
type redisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore creates a challenge store backed by the configured redis instance.
func NewRedisChallengeStore(cfg config.RedisConfig) ChallengeStoreInterface {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})
	return &redisChallengeStore{
		client: client,
	}
}

// NewRedisChallengeStoreWithClient creates a challenge store using an existing redis client.
func NewRedisChallengeStoreWithClient(client *redis.Client) ChallengeStoreInterface {
	return &redisChallengeStore{
		client: client,
	}
}

func redisChallengeKey(identifier string, purpose Purpose) string {
	return redisKeyPrefix + string(purpose) + ":" + identifier
}

// Put stores or replaces the challenge for its (identifier, purpose) pair.
func (s *redisChallengeStore) Put(challenge Challenge) error {
	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge for %s is already expired", challenge.Identifier)
	}

	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := redisChallengeKey(challenge.Identifier, challenge.Purpose)
	if err := s.client.Set(context.Background(), key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

// Get returns the live challenge for the pair, or nil when none exists or it expired.
func (s *redisChallengeStore) Get(identifier string, purpose Purpose) (*Challenge, error) {
	key := redisChallengeKey(identifier, purpose)
	data, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read challenge: %w", err)
	}

	var challenge Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	if challenge.Expired() {
		return nil, nil
	}
	return &challenge, nil
}

// Delete removes the challenge for the pair.
func (s *redisChallengeStore) Delete(identifier string, purpose Purpose) error {
	key := redisChallengeKey(identifier, purpose)
	if err := s.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}
