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

// Package otp implements the one-time code verification provider.
package otp

import "time"

// Purpose tags an outstanding challenge with the flow it belongs to.
type Purpose string

const (
	// PurposeAuth marks a challenge issued for a login attempt.
	PurposeAuth Purpose = "AUTH"
	// PurposeRegistration marks a challenge issued for a registration flow.
	PurposeRegistration Purpose = "REGISTRATION"
)

// Challenge is an outstanding one-time code challenge for an (identifier, purpose) pair.
// At most one challenge is live per pair; starting a new one replaces the previous.
type Challenge struct {
	Identifier string    `json:"identifier"`
	Purpose    Purpose   `json:"purpose"`
	Code       string    `json:"code"`
	ConsumedBy string    `json:"consumedBy,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// Expired reports whether the challenge has passed its expiry time.
func (c *Challenge) Expired() bool {
	return time.Now().After(c.ExpiresAt)
}
