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

// ErrorKind classifies a challenge outcome. Every failing branch of the engine
// maps to exactly one kind plus a target field for presenter highlighting.
type ErrorKind string

const (
	// KindMissingField marks a required form field left blank.
	KindMissingField ErrorKind = "MISSING_FIELD"
	// KindInvalidPhoneFormat marks a phone number that failed canonicalization.
	KindInvalidPhoneFormat ErrorKind = "INVALID_PHONE_FORMAT"
	// KindInvalidOrExpiredCode marks a one-time code that did not match the
	// outstanding challenge, or for which no challenge is outstanding.
	KindInvalidOrExpiredCode ErrorKind = "INVALID_OR_EXPIRED_CODE"
	// KindInvalidCredentials marks a password that did not match the stored credential.
	KindInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	// KindUserNotFound marks an identifier that resolved no user.
	KindUserNotFound ErrorKind = "USER_NOT_FOUND"
	// KindAccountDisabled marks a resolved but disabled user account.
	KindAccountDisabled ErrorKind = "ACCOUNT_DISABLED"
	// KindUsernameConflict marks an identifier colliding with more than one user,
	// or a derived username already held by an existing user.
	KindUsernameConflict ErrorKind = "USERNAME_CONFLICT"
	// KindEmailConflict marks an email address shared by more than one user.
	KindEmailConflict ErrorKind = "EMAIL_CONFLICT"
	// KindPhoneNumberConflict marks a phone number shared by more than one user.
	KindPhoneNumberConflict ErrorKind = "PHONE_NUMBER_CONFLICT"
	// KindRegistrationFailed marks a user creation failure during auto-registration.
	KindRegistrationFailed ErrorKind = "REGISTRATION_FAILED"
	// KindCollaboratorUnavailable marks a transient failure of an external collaborator.
	KindCollaboratorUnavailable ErrorKind = "COLLABORATOR_UNAVAILABLE"
)
