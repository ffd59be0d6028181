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

package phoneform

import (
	"time"

	"github.com/asgardeo/phoneauth/internal/event"
	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	usermodel "github.com/asgardeo/phoneauth/internal/user/model"
)

// serviceError shortens the mock function signatures.
type serviceError = serviceerror.ServiceError

// userServiceMock is a mock implementation of the user directory service.
type userServiceMock struct {
	MockGetUser               func(userID string) (*usermodel.User, *serviceerror.ServiceError)
	MockFindByUsernameOrEmail func(identifier string) (*usermodel.User, *serviceerror.ServiceError)
	MockFindByPhoneNumber     func(phoneNumber string) (*usermodel.User, *serviceerror.ServiceError)
	MockIsUsernameTaken       func(username string) (bool, *serviceerror.ServiceError)
	MockCreateUser            func(username, email, password string) (*usermodel.User, *serviceerror.ServiceError)
	MockCreateUserWithPhone   func(username, phoneNumber string) (*usermodel.User, *serviceerror.ServiceError)
	MockVerifyPassword        func(userID, password string) *serviceerror.ServiceError

	FindByUsernameOrEmailCalls []string
	FindByPhoneNumberCalls     []string
	IsUsernameTakenCalls       []string
	CreateUserWithPhoneCalls   []struct {
		Username    string
		PhoneNumber string
	}
	VerifyPasswordCalls []struct {
		UserID   string
		Password string
	}
}

func (m *userServiceMock) GetUser(userID string) (*usermodel.User, *serviceerror.ServiceError) {
	if m.MockGetUser != nil {
		return m.MockGetUser(userID)
	}
	return nil, nil
}

func (m *userServiceMock) FindByUsernameOrEmail(identifier string) (
	*usermodel.User, *serviceerror.ServiceError) {
	m.FindByUsernameOrEmailCalls = append(m.FindByUsernameOrEmailCalls, identifier)
	if m.MockFindByUsernameOrEmail != nil {
		return m.MockFindByUsernameOrEmail(identifier)
	}
	return nil, nil
}

func (m *userServiceMock) FindByPhoneNumber(phoneNumber string) (
	*usermodel.User, *serviceerror.ServiceError) {
	m.FindByPhoneNumberCalls = append(m.FindByPhoneNumberCalls, phoneNumber)
	if m.MockFindByPhoneNumber != nil {
		return m.MockFindByPhoneNumber(phoneNumber)
	}
	return nil, nil
}

func (m *userServiceMock) IsUsernameTaken(username string) (bool, *serviceerror.ServiceError) {
	m.IsUsernameTakenCalls = append(m.IsUsernameTakenCalls, username)
	if m.MockIsUsernameTaken != nil {
		return m.MockIsUsernameTaken(username)
	}
	return false, nil
}

func (m *userServiceMock) CreateUser(username, email, password string) (
	*usermodel.User, *serviceerror.ServiceError) {
	if m.MockCreateUser != nil {
		return m.MockCreateUser(username, email, password)
	}
	return nil, nil
}

func (m *userServiceMock) CreateUserWithPhone(username, phoneNumber string) (
	*usermodel.User, *serviceerror.ServiceError) {
	m.CreateUserWithPhoneCalls = append(m.CreateUserWithPhoneCalls, struct {
		Username    string
		PhoneNumber string
	}{username, phoneNumber})
	if m.MockCreateUserWithPhone != nil {
		return m.MockCreateUserWithPhone(username, phoneNumber)
	}
	return nil, nil
}

func (m *userServiceMock) VerifyPassword(userID, password string) *serviceerror.ServiceError {
	m.VerifyPasswordCalls = append(m.VerifyPasswordCalls, struct {
		UserID   string
		Password string
	}{userID, password})
	if m.MockVerifyPassword != nil {
		return m.MockVerifyPassword(userID, password)
	}
	return nil
}

// otpProviderMock is a mock implementation of the one-time code provider.
type otpProviderMock struct {
	MockStartChallenge func(identifier string, purpose otp.Purpose, code string,
		validity time.Duration) *serviceerror.ServiceError
	MockOutstanding func(identifier string, purpose otp.Purpose) (*otp.Challenge, *serviceerror.ServiceError)
	MockValidate    func(subjectID, identifier, code string, purpose otp.Purpose) *serviceerror.ServiceError

	OutstandingCalls []string
	ValidateCalls    []struct {
		SubjectID  string
		Identifier string
		Code       string
	}
}

func (m *otpProviderMock) StartChallenge(identifier string, purpose otp.Purpose, code string,
	validity time.Duration) *serviceerror.ServiceError {
	if m.MockStartChallenge != nil {
		return m.MockStartChallenge(identifier, purpose, code, validity)
	}
	return nil
}

func (m *otpProviderMock) Outstanding(identifier string, purpose otp.Purpose) (
	*otp.Challenge, *serviceerror.ServiceError) {
	m.OutstandingCalls = append(m.OutstandingCalls, identifier)
	if m.MockOutstanding != nil {
		return m.MockOutstanding(identifier, purpose)
	}
	return nil, nil
}

func (m *otpProviderMock) Validate(subjectID, identifier, code string,
	purpose otp.Purpose) *serviceerror.ServiceError {
	m.ValidateCalls = append(m.ValidateCalls, struct {
		SubjectID  string
		Identifier string
		Code       string
	}{subjectID, identifier, code})
	if m.MockValidate != nil {
		return m.MockValidate(subjectID, identifier, code, purpose)
	}
	return nil
}

// canonicalizerMock is a mock implementation of the phone number canonicalizer.
type canonicalizerMock struct {
	MockCanonicalize func(raw string) (string, *serviceerror.ServiceError)

	CanonicalizeCalls []string
}

func (m *canonicalizerMock) Canonicalize(raw string) (string, *serviceerror.ServiceError) {
	m.CanonicalizeCalls = append(m.CanonicalizeCalls, raw)
	if m.MockCanonicalize != nil {
		return m.MockCanonicalize(raw)
	}
	return raw, nil
}

// recorderMock collects audit events for inspection.
type recorderMock struct {
	Events []event.AuditEvent
}

func (m *recorderMock) Record(evt event.AuditEvent) {
	m.Events = append(m.Events, evt)
}

// eventsOfKind returns the recorded events of the given kind.
func (m *recorderMock) eventsOfKind(kind event.Kind) []event.AuditEvent {
	var matched []event.AuditEvent
	for _, evt := range m.Events {
		if evt.Kind == kind {
			matched = append(matched, evt)
		}
	}
	return matched
}
