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
	"time"

	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const loggerComponentName = "OTPProvider"

// ProviderInterface defines the interface of the one-time code verification provider.
type ProviderInterface interface {
	// StartChallenge records a new outstanding challenge, replacing any previous one
	// for the same (identifier, purpose) pair.
	StartChallenge(identifier string, purpose Purpose, code string,
		validity time.Duration) *serviceerror.ServiceError
	// Outstanding returns the live challenge for the pair, or nil when none exists.
	Outstanding(identifier string, purpose Purpose) (*Challenge, *serviceerror.ServiceError)
	// Validate checks the submitted code against the outstanding challenge and marks it
	// consumed by the given subject. Validation is idempotent for the same accepted code
	// and subject; a different subject re-using a consumed code is rejected.
	Validate(subjectID, identifier, code string, purpose Purpose) *serviceerror.ServiceError
}

// provider is the default implementation of ProviderInterface.
type provider struct {
	store ChallengeStoreInterface
}

// NewProvider creates a new one-time code provider on top of the given challenge store.
func NewProvider(store ChallengeStoreInterface) ProviderInterface {
	if store == nil {
		store = NewInMemoryChallengeStore()
	}
	return &provider{
		store: store,
	}
}

// StartChallenge records a new outstanding challenge for the pair.
func (p *provider) StartChallenge(identifier string, purpose Purpose, code string,
	validity time.Duration) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if identifier == "" || code == "" {
		return &ErrorInvalidChallengeRequest
	}

	challenge := Challenge{
		Identifier: identifier,
		Purpose:    purpose,
		Code:       code,
		ExpiresAt:  time.Now().Add(validity),
	}
	if err := p.store.Put(challenge); err != nil {
		logger.Error("Failed to store challenge", log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("Started code challenge", log.String("identifier", log.MaskString(identifier)),
		log.String("purpose", string(purpose)))
	return nil
}

// Outstanding returns the live challenge for the pair, or nil when none exists.
func (p *provider) Outstanding(identifier string, purpose Purpose) (
	*Challenge, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	challenge, err := p.store.Get(identifier, purpose)
	if err != nil {
		logger.Error("Failed to read challenge", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return challenge, nil
}

// Validate checks the submitted code against the outstanding challenge and marks it consumed.
func (p *provider) Validate(subjectID, identifier, code string, purpose Purpose) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if code == "" {
		return &ErrorCodeMismatch
	}

	challenge, err := p.store.Get(identifier, purpose)
	if err != nil {
		logger.Error("Failed to read challenge", log.Error(err))
		return &ErrorInternalServerError
	}
	if challenge == nil {
		// Expiry surfaces the same way as a never-issued challenge.
		return &ErrorNoOutstandingChallenge
	}

	if challenge.Code != code {
		return &ErrorCodeMismatch
	}

	if challenge.ConsumedBy != "" && challenge.ConsumedBy != subjectID {
		logger.Warn("Code re-use attempted by a different identity",
			log.String("identifier", log.MaskString(identifier)))
		return &ErrorCodeAlreadyConsumed
	}

	if challenge.ConsumedBy == "" {
		challenge.ConsumedBy = subjectID
		if err := p.store.Put(*challenge); err != nil {
			logger.Error("Failed to mark challenge consumed", log.Error(err))
			return &ErrorInternalServerError
		}
	}

	logger.Debug("Code validated", log.String("identifier", log.MaskString(identifier)),
		log.String("purpose", string(purpose)))
	return nil
}
