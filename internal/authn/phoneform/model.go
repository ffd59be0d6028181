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

// Package phoneform implements the phone-or-password authentication decision engine.
//
// The engine receives one form submission per invocation and terminates it by
// either authenticating the session, issuing a challenge back to the form, or
// redirecting the caller to registration. It holds no state across invocations
// beyond the named notes it reads and writes on the caller-owned session.
package phoneform

import (
	usermodel "github.com/asgardeo/phoneauth/internal/user/model"
)

// Form field names submitted by the login form.
const (
	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldPhoneNumber    = "phoneNumber"
	FieldCode           = "code"
	FieldPhoneActivated = "phoneActivated"
	FieldRememberMe     = "rememberMe"
)

// Presenter attribute keys attached to challenge and redirect outcomes.
const (
	// AttrSupportPhone controls whether the form offers the phone login option.
	AttrSupportPhone = "supportPhone"
	// AttrLoginWithPhoneNumber controls whether the username field accepts a phone number.
	AttrLoginWithPhoneNumber = "loginWithPhoneNumber"
	// AttrAutoRegistration controls whether the form advertises auto-registration.
	AttrAutoRegistration = "autoRegistrationEnabled"
	// AttrAttemptedPhoneNumber preserves the submitted phone number for form redisplay.
	AttrAttemptedPhoneNumber = "attemptedPhoneNumber"
	// AttrAttemptedUsername preserves the submitted identifier for form redisplay.
	AttrAttemptedUsername = "attemptedUsername"
)

// AuthRequest is the single unit of work per engine invocation. It is immutable
// for the duration of the invocation; only the referenced session is mutated.
type AuthRequest struct {
	// PhoneActivated is the raw mode flag from the form. "true" or "yes"
	// (case-insensitive) selects phone mode; anything else selects password mode.
	PhoneActivated string
	// UsernameOrPhone is the raw identifier: a username, email or phone number.
	UsernameOrPhone string
	// Password is the password credential in password mode.
	Password string
	// Code is the submitted one-time code in phone mode.
	Code string
	// RememberMe is the raw remember-me form value; "on" (case-insensitive) enables it.
	RememberMe string
	// Session is the caller-owned session the engine reads and writes notes on.
	Session *AuthSession
}

// AuthSession holds the named notes the engine maintains across challenge
// round trips within one flow. The host owns the session lifecycle; the engine
// never retains a reference beyond a single invocation.
type AuthSession struct {
	ID                  string
	AttemptedUsername   string
	VerifiedPhoneNumber string
	RememberMe          bool

	// UserID is the bound user once an invocation resolves one.
	UserID string
}

// BindUser associates the resolved user with the session.
func (s *AuthSession) BindUser(userID string) {
	s.UserID = userID
}

// ClearUser removes any previously bound user from the session.
func (s *AuthSession) ClearUser() {
	s.UserID = ""
}

// OutcomeKind identifies the terminal result type of one invocation.
type OutcomeKind string

const (
	// OutcomeAuthenticated marks a successfully authenticated invocation.
	OutcomeAuthenticated OutcomeKind = "AUTHENTICATED"
	// OutcomeChallenge marks an invocation answered with a form challenge.
	OutcomeChallenge OutcomeKind = "CHALLENGE"
	// OutcomeRedirect marks an invocation answered with a redirect.
	OutcomeRedirect OutcomeKind = "REDIRECT"
)

// Outcome is the terminal result of one invocation. Exactly one outcome is
// produced per invocation.
type Outcome struct {
	Kind OutcomeKind

	// User is set for authenticated outcomes.
	User *usermodel.User

	// ErrorKind and Field are set for challenge outcomes; Field names the form
	// field the presenter should highlight.
	ErrorKind ErrorKind
	Field     string

	// Target is set for redirect outcomes.
	Target string

	// Attributes carries presenter state: visibility flags and preserved input.
	Attributes map[string]string
}

// PresenterInterface constructs terminal outcomes for the caller-facing form.
type PresenterInterface interface {
	// Challenge builds a challenge outcome highlighting the given field.
	Challenge(kind ErrorKind, field string, attrs map[string]string) Outcome
	// Redirect builds a redirect outcome to the given target.
	Redirect(target string, attrs map[string]string) Outcome
	// Authenticated builds a successful outcome for the given user.
	Authenticated(user *usermodel.User) Outcome
}

// formPresenter is the default presenter constructing plain Outcome values.
type formPresenter struct{}

// NewFormPresenter creates the default outcome presenter.
func NewFormPresenter() PresenterInterface {
	return &formPresenter{}
}

// Challenge builds a challenge outcome highlighting the given field.
func (formPresenter) Challenge(kind ErrorKind, field string, attrs map[string]string) Outcome {
	return Outcome{
		Kind:       OutcomeChallenge,
		ErrorKind:  kind,
		Field:      field,
		Attributes: attrs,
	}
}

// Redirect builds a redirect outcome to the given target.
func (formPresenter) Redirect(target string, attrs map[string]string) Outcome {
	return Outcome{
		Kind:       OutcomeRedirect,
		Target:     target,
		Attributes: attrs,
	}
}

// Authenticated builds a successful outcome for the given user.
func (formPresenter) Authenticated(user *usermodel.User) Outcome {
	return Outcome{
		Kind: OutcomeAuthenticated,
		User: user,
	}
}
