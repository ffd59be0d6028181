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
	"github.com/asgardeo/phoneauth/internal/event"
	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/system/log"
	"github.com/asgardeo/phoneauth/internal/system/utils"
	userconst "github.com/asgardeo/phoneauth/internal/user/constants"
)

// autoRegUsernamePrefix prefixes usernames derived from the phone digits when
// the canonical phone number itself is not used as the username.
const autoRegUsernamePrefix = "user_"

// autoRegistrationMethod tags REGISTER audit events produced by this flow.
const autoRegistrationMethod = "phone-auto-registration"

// autoRegister provisions a new account for a verified but unknown phone number.
// The steps run in order and short-circuit on the first failure; the code is
// checked before any user is created so a bad code never leaves an orphan account.
// The code arrives already trimmed by the phone mode entry point.
func (e *engine) autoRegister(request *AuthRequest, cfg EngineConfig, canonical, code string) Outcome {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	session := request.Session

	challenge, svcErr := e.otpProvider.Outstanding(canonical, otp.PurposeAuth)
	if svcErr != nil {
		logger.Error("Failed to fetch outstanding challenge", log.String("code", svcErr.Code))
		return e.challenge(cfg, KindCollaboratorUnavailable, FieldCode, nil)
	}
	if challenge == nil || challenge.Code != code {
		return e.invalidCode(request, cfg, canonical)
	}

	username := canonical
	if !cfg.AutoRegPhoneAsUsername {
		username = autoRegUsernamePrefix + utils.StripNonDigits(canonical)
	}

	taken, svcErr := e.userService.IsUsernameTaken(username)
	if svcErr != nil {
		logger.Error("Username conflict check failed", log.String("code", svcErr.Code))
		return e.challenge(cfg, KindCollaboratorUnavailable, FieldPhoneNumber, nil)
	}
	if taken {
		e.recordRegisterError(session, canonical, "username already taken")
		return e.challenge(cfg, KindUsernameConflict, FieldPhoneNumber, map[string]string{
			AttrAttemptedPhoneNumber: canonical,
		})
	}

	user, svcErr := e.userService.CreateUserWithPhone(username, canonical)
	if svcErr != nil {
		if svcErr.Code == userconst.ErrorUsernameAlreadyTaken.Code {
			// Lost the race for the username between the check and the insert.
			e.recordRegisterError(session, canonical, "username already taken")
			return e.challenge(cfg, KindUsernameConflict, FieldPhoneNumber, map[string]string{
				AttrAttemptedPhoneNumber: canonical,
			})
		}
		logger.Error("User creation failed", log.String("code", svcErr.Code))
		e.recordRegisterError(session, canonical, "user creation failed")
		return e.challenge(cfg, KindRegistrationFailed, FieldPhoneNumber, nil)
	}

	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindRegister,
		UserID:    user.ID,
		SessionID: session.ID,
		Details: map[string]string{
			event.DetailKeyUsername:    user.Username,
			event.DetailKeyPhoneNumber: canonical,
			event.DetailKeyMethod:      autoRegistrationMethod,
		},
	})

	// Re-validate the same code to bind the challenge's consumption to the new
	// user identity. A failure here leaves the created user behind; it can only
	// happen when the challenge changed underneath us mid-flight.
	if svcErr := e.otpProvider.Validate(user.ID, canonical, code, otp.PurposeAuth); svcErr != nil {
		logger.Warn("Code confirmation failed after user creation",
			log.String("userId", user.ID), log.String("code", svcErr.Code))
		return e.invalidCode(request, cfg, canonical)
	}

	return e.bindVerifiedUser(request, cfg, user, canonical)
}

// recordRegisterError audits a failed auto-registration attempt with its reason.
func (e *engine) recordRegisterError(session *AuthSession, phoneNumber, reason string) {
	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindRegisterError,
		SessionID: session.ID,
		Details: map[string]string{
			event.DetailKeyPhoneNumber: phoneNumber,
			event.DetailKeyMethod:      autoRegistrationMethod,
			event.DetailKeyReason:      reason,
		},
	})
}
