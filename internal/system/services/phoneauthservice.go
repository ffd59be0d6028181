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

package services

import (
	"net/http"
	"os"

	"github.com/asgardeo/phoneauth/internal/authn/phoneform"
	"github.com/asgardeo/phoneauth/internal/authn/phoneform/handler"
	"github.com/asgardeo/phoneauth/internal/event"
	"github.com/asgardeo/phoneauth/internal/notification"
	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/phone"
	"github.com/asgardeo/phoneauth/internal/system/config"
	"github.com/asgardeo/phoneauth/internal/system/middleware"
	userservice "github.com/asgardeo/phoneauth/internal/user/service"
	userstore "github.com/asgardeo/phoneauth/internal/user/store"
)

// PhoneAuthService defines the service exposing the phone-or-password login flow.
type PhoneAuthService struct {
	phoneFormHandler *handler.PhoneFormHandler
}

// NewPhoneAuthService wires the decision engine with its collaborators and
// registers the login routes.
func NewPhoneAuthService(mux *http.ServeMux) ServiceInterface {
	cfg := config.GetPhoneAuthRuntime().Config

	var challengeStore otp.ChallengeStoreInterface
	if cfg.Redis.Address != "" {
		challengeStore = otp.NewRedisChallengeStore(cfg.Redis)
	} else {
		challengeStore = otp.NewInMemoryChallengeStore()
	}
	otpProvider := otp.NewProvider(challengeStore)

	canonicalizer := phone.NewCanonicalizer(cfg.UserStore.DefaultRegion)
	recorder := event.NewDispatcher(event.NewJSONWriterSink(os.Stdout))

	engine := phoneform.NewEngine(userservice.NewUserService(userstore.NewCachedBackedUserStore()), otpProvider,
		canonicalizer, recorder, phoneform.NewFormPresenter())
	otpSender := notification.NewOTPSendService(otpProvider, cfg.OTP, cfg.Notification)

	instance := &PhoneAuthService{
		phoneFormHandler: handler.NewPhoneFormHandler(engine, canonicalizer, otpSender,
			handler.NewSessionStore()),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the PhoneAuthService.
func (p *PhoneAuthService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/phone/send",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("POST /auth/phone/send",
		p.phoneFormHandler.HandleSendCode, opts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /auth/login",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("POST /auth/login",
		p.phoneFormHandler.HandleAuthenticate, opts))
}
