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

// Package phone provides canonicalization of raw phone number input.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const loggerComponentName = "PhoneCanonicalizer"

// CanonicalizerInterface defines the contract for normalizing raw phone number input
// into the canonical identifier used for directory lookups and OTP challenges.
type CanonicalizerInterface interface {
	Canonicalize(raw string) (string, *serviceerror.ServiceError)
}

// canonicalizer is the default implementation of CanonicalizerInterface.
type canonicalizer struct {
	defaultRegion string
}

// NewCanonicalizer creates a new canonicalizer using the given default region
// for numbers submitted without a country prefix.
func NewCanonicalizer(defaultRegion string) CanonicalizerInterface {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &canonicalizer{
		defaultRegion: defaultRegion,
	}
}

// Canonicalize parses and validates the raw input and returns the E.164 form.
func (c *canonicalizer) Canonicalize(raw string) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ErrorEmptyPhoneNumber
	}

	parsed, err := phonenumbers.Parse(trimmed, c.defaultRegion)
	if err != nil {
		logger.Debug("Failed to parse phone number", log.String("input", log.MaskString(trimmed)),
			log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorUnparseablePhoneNumber, err.Error())
	}

	if !phonenumbers.IsValidNumber(parsed) {
		logger.Debug("Phone number is not valid for its region",
			log.String("input", log.MaskString(trimmed)))
		return "", &ErrorInvalidPhoneNumber
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
