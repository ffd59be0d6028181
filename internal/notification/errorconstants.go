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

package notification

import "github.com/asgardeo/phoneauth/internal/system/error/serviceerror"

// Client errors for notification operations.
var (
	// ErrorSenderNotFound is the error returned when the requested sender is not configured.
	ErrorSenderNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NOTIF-1001",
		Error:            "Sender not found",
		ErrorDescription: "The requested message sender is not configured",
	}
	// ErrorInvalidSenderConfig is the error returned when a sender configuration is invalid.
	ErrorInvalidSenderConfig = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NOTIF-1002",
		Error:            "Invalid sender configuration",
		ErrorDescription: "The message sender configuration is invalid",
	}
	// ErrorInvalidRecipient is the error returned when the recipient number is empty.
	ErrorInvalidRecipient = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NOTIF-1003",
		Error:            "Invalid recipient",
		ErrorDescription: "A recipient phone number is required",
	}
)

// Server errors for notification operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "NOTIF-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
