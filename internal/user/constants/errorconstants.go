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

// Package constants defines the error constants for the user service.
package constants

import "github.com/asgardeo/phoneauth/internal/system/error/serviceerror"

// Client errors for user management service
var (
	// ErrorUserNotFound is the error returned when no user matches the given identifier.
	ErrorUserNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1001",
		Error:            "User not found",
		ErrorDescription: "No user matches the provided identifier",
	}
	// ErrorDuplicateUsername is the error returned when more than one user shares the username.
	ErrorDuplicateUsername = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1002",
		Error:            "Duplicate username",
		ErrorDescription: "More than one user record shares the provided username",
	}
	// ErrorDuplicateEmail is the error returned when more than one user shares the email address.
	ErrorDuplicateEmail = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1003",
		Error:            "Duplicate email",
		ErrorDescription: "More than one user record shares the provided email address",
	}
	// ErrorDuplicatePhoneNumber is the error returned when more than one user shares the phone number.
	ErrorDuplicatePhoneNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1004",
		Error:            "Duplicate phone number",
		ErrorDescription: "More than one user record shares the provided phone number",
	}
	// ErrorUsernameAlreadyTaken is the error returned when creating a user with a taken username.
	ErrorUsernameAlreadyTaken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1005",
		Error:            "Username already taken",
		ErrorDescription: "A user with the provided username already exists",
	}
	// ErrorInvalidCredentials is the error returned when credential verification fails.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1006",
		Error:            "Invalid credentials",
		ErrorDescription: "The provided credentials do not match the stored credentials",
	}
)

// Server errors for user management service
var (
	// ErrorInternalServerError is returned when an unexpected error occurs on the server.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "USR-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
