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
	"github.com/asgardeo/phoneauth/internal/system/config"
	"github.com/asgardeo/phoneauth/internal/system/utils"
)

// Configuration property keys resolved into EngineConfig.
const (
	PropLoginWithPhoneVerify   = "loginWithPhoneVerify"
	PropLoginWithPhoneNumber   = "loginWithPhoneNumber"
	PropEnableAutoRegistration = "enableAutoRegistration"
	PropAutoRegPhoneAsUsername = "autoRegPhoneAsUsername"
	PropRedirectOnUserNotFound = "redirectOnUserNotFound"
)

// EngineConfig is the immutable per-invocation configuration of the decision
// engine, resolved once before the engine runs.
type EngineConfig struct {
	// LoginWithPhoneVerify advertises the phone plus one-time code login mode
	// on the form. Routing itself follows the submitted mode flag.
	LoginWithPhoneVerify bool
	// LoginWithPhoneNumber allows the password-mode identifier to be a phone number.
	LoginWithPhoneNumber bool
	// AutoRegistrationEnabled provisions a new account for an unknown verified phone.
	AutoRegistrationEnabled bool
	// AutoRegPhoneAsUsername uses the canonical phone number as the derived username.
	AutoRegPhoneAsUsername bool
	// RedirectOnUserNotFound redirects unknown password-mode users to registration.
	RedirectOnUserNotFound bool

	// ForbidDuplicatePhone reflects the system-wide uniqueness guarantee for
	// phone numbers; phone fallback lookup in password mode requires it.
	ForbidDuplicatePhone bool
	// RegistrationAllowed reflects whether the realm permits self-registration.
	RegistrationAllowed bool
	// RegistrationTarget is the registration entry point used for redirects.
	RegistrationTarget string
}

// DefaultEngineConfig returns the engine configuration with documented defaults:
// both phone login modes enabled, auto-registration and redirect-on-not-found disabled.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LoginWithPhoneVerify:    true,
		LoginWithPhoneNumber:    true,
		AutoRegistrationEnabled: false,
		AutoRegPhoneAsUsername:  true,
		RedirectOnUserNotFound:  false,
	}
}

// ResolveEngineConfig resolves the engine configuration from an ordered list of
// property sources. The first source defining a property wins; properties no
// source defines keep their default values.
func ResolveEngineConfig(sources ...map[string]string) EngineConfig {
	cfg := DefaultEngineConfig()

	resolve := func(key string, target *bool) {
		for _, source := range sources {
			if value, ok := source[key]; ok {
				*target = utils.ParseBoolFlag(value)
				return
			}
		}
	}

	resolve(PropLoginWithPhoneVerify, &cfg.LoginWithPhoneVerify)
	resolve(PropLoginWithPhoneNumber, &cfg.LoginWithPhoneNumber)
	resolve(PropEnableAutoRegistration, &cfg.AutoRegistrationEnabled)
	resolve(PropAutoRegPhoneAsUsername, &cfg.AutoRegPhoneAsUsername)
	resolve(PropRedirectOnUserNotFound, &cfg.RedirectOnUserNotFound)

	return cfg
}

// EngineConfigFromAppConfig resolves the engine configuration from the server
// configuration, layering the authenticator properties over the defaults and
// applying the realm-level user store settings.
func EngineConfigFromAppConfig(appConfig *config.Config) EngineConfig {
	if appConfig == nil {
		return DefaultEngineConfig()
	}

	cfg := ResolveEngineConfig(appConfig.Authenticator.Properties)
	cfg.ForbidDuplicatePhone = appConfig.UserStore.ForbidDuplicatePhone
	cfg.RegistrationAllowed = appConfig.UserStore.RegistrationAllowed
	cfg.RegistrationTarget = appConfig.UserStore.RegistrationURL
	return cfg
}
