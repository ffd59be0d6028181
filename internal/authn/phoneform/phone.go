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
	"strings"

	"github.com/asgardeo/phoneauth/internal/otp"
	phonepkg "github.com/asgardeo/phoneauth/internal/phone"
	"github.com/asgardeo/phoneauth/internal/system/log"
	userconst "github.com/asgardeo/phoneauth/internal/user/constants"
)

// authenticateWithPhone validates a phone number plus one-time code against an
// existing user, or hands over to auto-registration when no user matches.
func (e *engine) authenticateWithPhone(request *AuthRequest, cfg EngineConfig) Outcome {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	session := request.Session

	// Any user bound by an earlier attempt within this flow is stale.
	session.ClearUser()

	phoneNumber := strings.TrimSpace(request.UsernameOrPhone)
	if phoneNumber == "" {
		return e.challenge(cfg, KindMissingField, FieldPhoneNumber, nil)
	}
	code := strings.TrimSpace(request.Code)
	if code == "" {
		return e.invalidCode(request, cfg, phoneNumber)
	}

	canonical, svcErr := e.canonicalizer.Canonicalize(phoneNumber)
	if svcErr != nil {
		kind := KindInvalidPhoneFormat
		if svcErr.Code == phonepkg.ErrorEmptyPhoneNumber.Code {
			kind = KindMissingField
		}
		return e.challenge(cfg, kind, FieldPhoneNumber, map[string]string{
			AttrAttemptedPhoneNumber: phoneNumber,
		})
	}

	user, svcErr := e.userService.FindByPhoneNumber(canonical)
	if svcErr != nil {
		switch svcErr.Code {
		case userconst.ErrorUserNotFound.Code:
			if cfg.AutoRegistrationEnabled {
				return e.autoRegister(request, cfg, canonical, code)
			}
			e.recordLoginError(session, canonical, "user not found")
			return e.challenge(cfg, KindUserNotFound, FieldPhoneNumber, map[string]string{
				AttrAttemptedPhoneNumber: phoneNumber,
			})
		case userconst.ErrorDuplicatePhoneNumber.Code:
			e.recordLoginError(session, canonical, "duplicate phone number")
			return e.challenge(cfg, KindPhoneNumberConflict, FieldPhoneNumber, map[string]string{
				AttrAttemptedPhoneNumber: phoneNumber,
			})
		default:
			logger.Error("Phone number lookup failed", log.String("code", svcErr.Code))
			return e.challenge(cfg, KindCollaboratorUnavailable, FieldPhoneNumber, nil)
		}
	}

	if svcErr := e.otpProvider.Validate(user.ID, canonical, code, otp.PurposeAuth); svcErr != nil {
		if svcErr.Code == otp.ErrorInternalServerError.Code {
			logger.Error("Code validation failed", log.String("code", svcErr.Code))
			return e.challenge(cfg, KindCollaboratorUnavailable, FieldCode, nil)
		}
		return e.invalidCode(request, cfg, canonical)
	}

	return e.bindVerifiedUser(request, cfg, user, canonical)
}
