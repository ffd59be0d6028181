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

	"github.com/asgardeo/phoneauth/internal/event"
	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/phone"
	"github.com/asgardeo/phoneauth/internal/system/log"
	"github.com/asgardeo/phoneauth/internal/system/utils"
	userconst "github.com/asgardeo/phoneauth/internal/user/constants"
	usermodel "github.com/asgardeo/phoneauth/internal/user/model"
	userservice "github.com/asgardeo/phoneauth/internal/user/service"
)

const loggerComponentName = "PhoneFormEngine"

// rememberMeValue is the form value enabling the remember-me note.
const rememberMeValue = "on"

// EngineInterface defines the interface of the authentication decision engine.
type EngineInterface interface {
	// Authenticate processes one form submission to a terminal outcome.
	Authenticate(request *AuthRequest, cfg EngineConfig) Outcome
}

// engine is the default implementation of EngineInterface.
type engine struct {
	userService   userservice.UserServiceInterface
	otpProvider   otp.ProviderInterface
	canonicalizer phone.CanonicalizerInterface
	recorder      event.RecorderInterface
	presenter     PresenterInterface
}

// NewEngine creates a new authentication decision engine.
func NewEngine(userService userservice.UserServiceInterface, otpProvider otp.ProviderInterface,
	canonicalizer phone.CanonicalizerInterface, recorder event.RecorderInterface,
	presenter PresenterInterface) EngineInterface {
	if userService == nil {
		userService = userservice.NewUserService(nil)
	}
	if otpProvider == nil {
		otpProvider = otp.NewProvider(nil)
	}
	if canonicalizer == nil {
		canonicalizer = phone.NewCanonicalizer("")
	}
	if recorder == nil {
		recorder = event.NewDispatcher(nil)
	}
	if presenter == nil {
		presenter = NewFormPresenter()
	}
	return &engine{
		userService:   userService,
		otpProvider:   otpProvider,
		canonicalizer: canonicalizer,
		recorder:      recorder,
		presenter:     presenter,
	}
}

// Authenticate dispatches the request to the mode selected by the form flag.
// Any value other than an affirmative phone-activated flag routes to password mode.
func (e *engine) Authenticate(request *AuthRequest, cfg EngineConfig) Outcome {
	if request == nil || request.Session == nil {
		return e.challenge(cfg, KindCollaboratorUnavailable, "", nil)
	}

	if utils.ParseBoolFlag(request.PhoneActivated) {
		return e.authenticateWithPhone(request, cfg)
	}
	return e.authenticateWithPassword(request, cfg)
}

// authenticateWithPassword validates a username/email/phone identifier plus
// password, with an optional redirect to registration for unknown users.
func (e *engine) authenticateWithPassword(request *AuthRequest, cfg EngineConfig) Outcome {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	session := request.Session

	identifier := strings.TrimSpace(request.UsernameOrPhone)
	if identifier == "" {
		return e.challenge(cfg, KindMissingField, FieldUsername, nil)
	}
	session.AttemptedUsername = identifier

	user, svcErr := e.userService.FindByUsernameOrEmail(identifier)
	if svcErr != nil {
		// A lookup can fail with a duplicate conflict rather than a clean miss;
		// the conflict must be reported before the not-found fallbacks run.
		switch svcErr.Code {
		case userconst.ErrorDuplicateUsername.Code:
			e.recordLoginError(session, identifier, "duplicate username")
			return e.challenge(cfg, KindUsernameConflict, FieldUsername, nil)
		case userconst.ErrorDuplicateEmail.Code:
			e.recordLoginError(session, identifier, "duplicate email")
			return e.challenge(cfg, KindEmailConflict, FieldUsername, nil)
		case userconst.ErrorUserNotFound.Code:
			user = e.lookupByPhoneFallback(identifier, cfg)
		default:
			logger.Error("User lookup failed", log.String("code", svcErr.Code))
			return e.challenge(cfg, KindCollaboratorUnavailable, FieldUsername, nil)
		}
	}

	if user == nil {
		if cfg.RedirectOnUserNotFound && cfg.RegistrationAllowed {
			logger.Debug("Redirecting unknown user to registration",
				log.String("identifier", log.MaskString(identifier)))
			return e.presenter.Redirect(cfg.RegistrationTarget, e.presenterFlags(cfg, map[string]string{
				AttrAttemptedUsername: identifier,
			}))
		}
		e.recordLoginError(session, identifier, "user not found")
		return e.challenge(cfg, KindUserNotFound, FieldUsername, nil)
	}

	if !user.Enabled {
		e.recordLoginError(session, identifier, "account disabled")
		return e.challenge(cfg, KindAccountDisabled, "", nil)
	}

	if svcErr := e.userService.VerifyPassword(user.ID, request.Password); svcErr != nil {
		if svcErr.Code == userconst.ErrorInvalidCredentials.Code {
			e.recordLoginError(session, identifier, "invalid credentials")
			return e.challenge(cfg, KindInvalidCredentials, FieldPassword, nil)
		}
		logger.Error("Credential verification failed", log.String("code", svcErr.Code))
		return e.challenge(cfg, KindCollaboratorUnavailable, FieldPassword, nil)
	}

	e.applyRememberMe(request)
	session.BindUser(user.ID)

	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindLogin,
		UserID:    user.ID,
		SessionID: session.ID,
		Details: map[string]string{
			event.DetailKeyUsername:   user.Username,
			event.DetailKeyRememberMe: boolString(session.RememberMe),
		},
	})
	return e.presenter.Authenticated(user)
}

// lookupByPhoneFallback resolves the identifier as a phone number when phone
// login is enabled and phone numbers are unique system-wide. Any failure is
// treated as not found; the caller decides what not-found means.
func (e *engine) lookupByPhoneFallback(identifier string, cfg EngineConfig) *usermodel.User {
	if !cfg.LoginWithPhoneNumber || !cfg.ForbidDuplicatePhone {
		return nil
	}

	canonical, svcErr := e.canonicalizer.Canonicalize(identifier)
	if svcErr != nil {
		return nil
	}
	user, svcErr := e.userService.FindByPhoneNumber(canonical)
	if svcErr != nil {
		return nil
	}
	return user
}

// applyRememberMe records the remember-me note from the form input. Any value
// other than an affirmative one clears the note.
func (e *engine) applyRememberMe(request *AuthRequest) {
	request.Session.RememberMe = strings.EqualFold(strings.TrimSpace(request.RememberMe), rememberMeValue)
}

// recordLoginError audits a failed login attempt with its reason.
func (e *engine) recordLoginError(session *AuthSession, identifier, reason string) {
	e.recorder.Record(event.AuditEvent{
		Kind:      event.KindLoginError,
		SessionID: session.ID,
		Details: map[string]string{
			event.DetailKeyUsername: identifier,
			event.DetailKeyReason:   reason,
		},
	})
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
