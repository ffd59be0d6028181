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

// Package event provides structured audit event recording.
package event

import "time"

// Kind classifies an audit event.
type Kind string

const (
	// KindLogin marks a successful login.
	KindLogin Kind = "LOGIN"
	// KindLoginError marks a failed login attempt with a reason detail.
	KindLoginError Kind = "LOGIN_ERROR"
	// KindRegister marks a successful registration.
	KindRegister Kind = "REGISTER"
	// KindRegisterError marks a failed registration attempt.
	KindRegisterError Kind = "REGISTER_ERROR"
)

// Detail keys shared by the authentication flows.
const (
	DetailKeyUsername    = "username"
	DetailKeyPhoneNumber = "phoneNumber"
	DetailKeyReason      = "reason"
	DetailKeyMethod      = "method"
	DetailKeyRememberMe  = "rememberMe"
)

// AuditEvent is a structured audit record emitted by the authentication flows.
type AuditEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	Kind      Kind              `json:"kind"`
	UserID    string            `json:"userId,omitempty"`
	SessionID string            `json:"sessionId,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// RecorderInterface is the contract the authentication flows record events through.
// Recording is fire-and-forget; implementations must never block the caller.
type RecorderInterface interface {
	Record(event AuditEvent)
}
