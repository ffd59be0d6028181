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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/asgardeo/phoneauth/internal/authn/phoneform"
	"github.com/asgardeo/phoneauth/internal/notification"
	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/phone"
	"github.com/asgardeo/phoneauth/internal/system/config"
	serverconst "github.com/asgardeo/phoneauth/internal/system/constants"
	"github.com/asgardeo/phoneauth/internal/system/error/apierror"
	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	"github.com/asgardeo/phoneauth/internal/system/jwt"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const loggerComponentName = "PhoneFormHandler"

// Form parameter carrying the session id across challenge round trips.
const paramSessionID = "sessionId"

// loginAssertionAudience is the audience claim of issued login assertions.
const loginAssertionAudience = "phoneauth"

// PhoneFormHandler exposes the phone-or-password login flow over HTTP.
type PhoneFormHandler struct {
	engine        phoneform.EngineInterface
	canonicalizer phone.CanonicalizerInterface
	otpSender     notification.OTPSendServiceInterface
	jwtService    jwt.JWTServiceInterface
	sessions      SessionStoreInterface
}

// NewPhoneFormHandler creates a new handler wired to the given collaborators.
func NewPhoneFormHandler(engine phoneform.EngineInterface, canonicalizer phone.CanonicalizerInterface,
	otpSender notification.OTPSendServiceInterface, sessions SessionStoreInterface) *PhoneFormHandler {
	if canonicalizer == nil {
		canonicalizer = phone.NewCanonicalizer("")
	}
	if sessions == nil {
		sessions = NewSessionStore()
	}
	return &PhoneFormHandler{
		engine:        engine,
		canonicalizer: canonicalizer,
		otpSender:     otpSender,
		jwtService:    jwt.GetJWTService(),
		sessions:      sessions,
	}
}

// HandleSendCode handles a request to deliver a one-time code to a phone number.
func (h *PhoneFormHandler) HandleSendCode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, apierror.ErrorResponse{
			Code:    "PFH-1001",
			Message: "Invalid request format",
		})
		return
	}

	canonical, svcErr := h.canonicalizer.Canonicalize(r.PostFormValue(phoneform.FieldPhoneNumber))
	if svcErr != nil {
		h.handleServiceError(w, svcErr)
		return
	}

	if svcErr := h.otpSender.SendOTP(canonical, otp.PurposeAuth); svcErr != nil {
		h.handleServiceError(w, svcErr)
		return
	}

	session := h.sessions.GetOrCreate(r.PostFormValue(paramSessionID))
	h.writeSuccessResponse(w, http.StatusOK, SendCodeResponseDTO{
		Status:    "SUCCESS",
		SessionID: session.ID,
	})
}

// HandleAuthenticate handles one login form submission.
func (h *PhoneFormHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if err := r.ParseForm(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, apierror.ErrorResponse{
			Code:    "PFH-1001",
			Message: "Invalid request format",
		})
		return
	}

	session := h.sessions.GetOrCreate(r.PostFormValue(paramSessionID))
	request := h.buildAuthRequest(r, session)
	cfg := phoneform.EngineConfigFromAppConfig(&config.GetPhoneAuthRuntime().Config)

	outcome := h.engine.Authenticate(request, cfg)
	switch outcome.Kind {
	case phoneform.OutcomeAuthenticated:
		assertion, err := h.jwtService.GenerateJWT(outcome.User.ID, loginAssertionAudience, 0,
			map[string]interface{}{"username": outcome.User.Username})
		if err != nil {
			logger.Error("Failed to issue login assertion", log.Error(err))
			h.writeErrorResponse(w, http.StatusInternalServerError, apierror.ErrorResponse{
				Code:    "PFH-5000",
				Message: "Internal server error",
			})
			return
		}
		h.sessions.Delete(session.ID)
		h.writeSuccessResponse(w, http.StatusOK, AuthenticatedResponseDTO{
			Status:    "SUCCESS",
			UserID:    outcome.User.ID,
			Username:  outcome.User.Username,
			Assertion: assertion,
		})
	case phoneform.OutcomeRedirect:
		http.Redirect(w, r, outcome.Target, http.StatusFound)
	case phoneform.OutcomeChallenge:
		h.writeSuccessResponse(w, http.StatusUnauthorized, ChallengeResponseDTO{
			Status:     "CHALLENGE",
			ErrorKind:  string(outcome.ErrorKind),
			Field:      outcome.Field,
			SessionID:  session.ID,
			Attributes: outcome.Attributes,
		})
	default:
		logger.Error("Unknown outcome kind", log.String("kind", string(outcome.Kind)))
		h.writeErrorResponse(w, http.StatusInternalServerError, apierror.ErrorResponse{
			Code:    "PFH-5000",
			Message: "Internal server error",
		})
	}
}

// buildAuthRequest maps the submitted form onto one unit of engine work. The
// identifier field doubles as the phone number in phone mode.
func (h *PhoneFormHandler) buildAuthRequest(r *http.Request, session *phoneform.AuthSession) *phoneform.AuthRequest {
	identifier := r.PostFormValue(phoneform.FieldUsername)
	if identifier == "" {
		identifier = r.PostFormValue(phoneform.FieldPhoneNumber)
	}

	return &phoneform.AuthRequest{
		PhoneActivated:  r.PostFormValue(phoneform.FieldPhoneActivated),
		UsernameOrPhone: identifier,
		Password:        r.PostFormValue(phoneform.FieldPassword),
		Code:            r.PostFormValue(phoneform.FieldCode),
		RememberMe:      r.PostFormValue(phoneform.FieldRememberMe),
		Session:         session,
	}
}

// handleServiceError converts service errors to appropriate HTTP responses.
func (h *PhoneFormHandler) handleServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	if svcErr.Type == serviceerror.ServerErrorType {
		status = http.StatusInternalServerError
	}

	h.writeErrorResponse(w, status, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// writeSuccessResponse writes a JSON response with the given status.
func (h *PhoneFormHandler) writeSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", log.Error(err))
	}
}

// writeErrorResponse writes an error response.
func (h *PhoneFormHandler) writeErrorResponse(w http.ResponseWriter,
	statusCode int, errorResp apierror.ErrorResponse) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		logger.Error("Failed to encode error response", log.Error(err))
	}
}
