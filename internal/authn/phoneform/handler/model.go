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

// Package handler exposes the phone-or-password login flow over HTTP.
package handler

// SendCodeResponseDTO is the response body for a successful code send request.
type SendCodeResponseDTO struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

// AuthenticatedResponseDTO is the response body for a successful authentication.
type AuthenticatedResponseDTO struct {
	Status    string `json:"status"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Assertion string `json:"assertion"`
}

// ChallengeResponseDTO is the response body for a challenge outcome.
type ChallengeResponseDTO struct {
	Status     string            `json:"status"`
	ErrorKind  string            `json:"error_kind"`
	Field      string            `json:"field,omitempty"`
	SessionID  string            `json:"session_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
