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

package phone

import "github.com/asgardeo/phoneauth/internal/system/error/serviceerror"

// Client errors for phone number canonicalization
var (
	// ErrorEmptyPhoneNumber is the error returned when the provided phone number is blank.
	ErrorEmptyPhoneNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PHONE-1001",
		Error:            "Empty phone number",
		ErrorDescription: "The provided phone number is empty",
	}
	// ErrorUnparseablePhoneNumber is the error returned when the input cannot be parsed as a phone number.
	ErrorUnparseablePhoneNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PHONE-1002",
		Error:            "Unparseable phone number",
		ErrorDescription: "The provided input could not be parsed as a phone number",
	}
	// ErrorInvalidPhoneNumber is the error returned when the number is not valid for its region.
	ErrorInvalidPhoneNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PHONE-1003",
		Error:            "Invalid phone number",
		ErrorDescription: "The provided phone number is not valid for its region",
	}
)
