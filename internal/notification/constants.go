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

// MessageProviderType defines the type of messaging provider.
type MessageProviderType string

const (
	// MessageProviderTypeTwilio represents the Twilio messaging provider.
	MessageProviderTypeTwilio MessageProviderType = "twilio"
	// MessageProviderTypeMSG91 represents the MSG91 messaging provider.
	MessageProviderTypeMSG91 MessageProviderType = "msg91"
	// MessageProviderTypeCustom represents a custom messaging provider.
	MessageProviderTypeCustom MessageProviderType = "custom"
)

const (
	// TwilioPropKeyAccountSID is the property key for the Twilio account SID.
	TwilioPropKeyAccountSID = "account_sid"
	// TwilioPropKeyAuthToken is the property key for the Twilio auth token.
	TwilioPropKeyAuthToken = "auth_token"
	// TwilioPropKeySenderID is the property key for the Twilio sender ID.
	TwilioPropKeySenderID = "sender_id"
)

const (
	// MSG91PropKeyAuthKey is the property key for the MSG91 auth key.
	MSG91PropKeyAuthKey = "auth_key"
	// MSG91PropKeyFlowID is the property key for the MSG91 flow template ID.
	MSG91PropKeyFlowID = "flow_id"
	// MSG91PropKeyOTPParam is the property key for the template variable carrying the code.
	MSG91PropKeyOTPParam = "otp_param"
)

const (
	// CustomPropKeyURL is the property key for the custom endpoint URL.
	CustomPropKeyURL = "url"
	// CustomPropKeyHTTPMethod is the property key for the HTTP method.
	CustomPropKeyHTTPMethod = "http_method"
	// CustomPropKeyHTTPHeaders is the property key for the HTTP headers.
	CustomPropKeyHTTPHeaders = "http_headers"
	// CustomPropKeyContentType is the property key for the content type.
	CustomPropKeyContentType = "content_type"
)
