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

package otp

import "github.com/asgardeo/phoneauth/internal/system/error/serviceerror"

// Client errors for the one-time code provider
var (
	// ErrorNoOutstandingChallenge is the error returned when no live challenge exists for the identifier.
	ErrorNoOutstandingChallenge = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OTP-1001",
		Error:            "No outstanding challenge",
		ErrorDescription: "No live code challenge exists for the identifier and purpose",
	}
	// ErrorCodeMismatch is the error returned when the submitted code does not match the challenge.
	ErrorCodeMismatch = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OTP-1002",
		Error:            "Code mismatch",
		ErrorDescription: "The submitted code does not match the outstanding challenge",
	}
	// ErrorCodeAlreadyConsumed is the error returned when the code was consumed by a different identity.
	ErrorCodeAlreadyConsumed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OTP-1003",
		Error:            "Code already consumed",
		ErrorDescription: "The outstanding code was already consumed by a different identity",
	}
	// ErrorInvalidChallengeRequest is the error returned when challenge parameters are missing.
	ErrorInvalidChallengeRequest = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OTP-1004",
		Error:            "Invalid challenge request",
		ErrorDescription: "The challenge identifier or code is missing",
	}
)

// Server errors for the one-time code provider
var (
	// ErrorInternalServerError is returned when an unexpected error occurs on the server.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "OTP-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
