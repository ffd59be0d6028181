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

import "fmt"

// MessageClientInterface defines the contract for sending SMS messages via a provider.
type MessageClientInterface interface {
	// GetName returns the configured name of the client.
	GetName() string
	// SendSMS sends the given SMS message.
	SendSMS(sms SMSData) error
}

// NewMessageClient creates a message client for the given sender configuration.
func NewMessageClient(senderDTO MessageSenderDTO) (MessageClientInterface, error) {
	switch senderDTO.Provider {
	case MessageProviderTypeTwilio:
		return NewTwilioClient(senderDTO)
	case MessageProviderTypeMSG91:
		return NewMSG91Client(senderDTO)
	case MessageProviderTypeCustom:
		return NewCustomClient(senderDTO)
	default:
		return nil, fmt.Errorf("unsupported message provider type: %s", senderDTO.Provider)
	}
}
