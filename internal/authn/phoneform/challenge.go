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
	usermodel "github.com/asgardeo/phoneauth/internal/user/model"
)

// presenterFlags merges the form visibility flags derived from the engine
// configuration into the outgoing presenter state. The flags only affect what
// the presenter draws, never the decision logic itself.
func (e *engine) presenterFlags(cfg EngineConfig, attrs map[string]string) map[string]string {
	if attrs == nil {
		attrs = make(map[string]string, 3)
	}
	attrs[AttrSupportPhone] = boolString(cfg.LoginWithPhoneVerify)
	attrs[AttrLoginWithPhoneNumber] = boolString(cfg.LoginWithPhoneNumber)
	attrs[AttrAutoRegistration] = boolString(cfg.AutoRegistrationEnabled)
	return attrs
}

// challenge builds a challenge outcome with the presenter flags merged in.
func (e *engine) challenge(cfg EngineConfig, kind ErrorKind, field string,
	attrs map[string]string) Outcome {
	return e.presenter.Challenge(kind, field, e.presenterFlags(cfg, attrs))
}

// invalidCode is the shared terminal path for a one-time code that did not
// match. It audits the failure, preserves the attempted phone number for form
// redisplay and always short-circuits its caller.
func (e *engine) invalidCode(request *AuthRequest, cfg EngineConfig, phoneNumber string) Outcome {
	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindLoginError,
		SessionID: request.Session.ID,
		Details: map[string]string{
			event.DetailKeyPhoneNumber: phoneNumber,
			event.DetailKeyReason:      "invalid or expired code",
		},
	})
	return e.challenge(cfg, KindInvalidOrExpiredCode, FieldCode, map[string]string{
		AttrAttemptedPhoneNumber: phoneNumber,
	})
}

// bindVerifiedUser is the shared enabled-check-and-bind sequence completing a
// phone-mode authentication: the user must be enabled, then the verified phone
// note is set and the user bound to the session.
func (e *engine) bindVerifiedUser(request *AuthRequest, cfg EngineConfig,
	user *usermodel.User, phoneNumber string) Outcome {
	session := request.Session

	if !user.Enabled {
		e.recorder.Record(event.AuditEvent{
			Kind:      event.KindLoginError,
			UserID:    user.ID,
			SessionID: session.ID,
			Details: map[string]string{
				event.DetailKeyPhoneNumber: phoneNumber,
				event.DetailKeyReason:      "account disabled",
			},
		})
		return e.challenge(cfg, KindAccountDisabled, "", map[string]string{
			AttrAttemptedPhoneNumber: phoneNumber,
		})
	}

	session.VerifiedPhoneNumber = phoneNumber
	e.applyRememberMe(request)
	session.BindUser(user.ID)

	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindLogin,
		UserID:    user.ID,
		SessionID: session.ID,
		Details: map[string]string{
			event.DetailKeyUsername:    user.Username,
			event.DetailKeyPhoneNumber: phoneNumber,
		},
	})
	return e.presenter.Authenticated(user)
}
