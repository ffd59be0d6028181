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

// Package notification provides SMS message sending for the one-time code flows.
package notification

import "github.com/asgardeo/phoneauth/internal/system/config"

// SMSData represents the data structure for a SMS message.
type SMSData struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// MessageSenderDTO represents the configuration of a message sender.
type MessageSenderDTO struct {
	Name       string              `json:"name"`
	Provider   MessageProviderType `json:"provider"`
	Properties map[string]string   `json:"properties"`
}

// SenderDTOFromConfig builds a MessageSenderDTO from a configured message sender.
func SenderDTOFromConfig(sender config.MessageSender) MessageSenderDTO {
	properties := make(map[string]string, len(sender.Properties))
	for key, value := range sender.Properties {
		properties[key] = value
	}
	return MessageSenderDTO{
		Name:       sender.Name,
		Provider:   MessageProviderType(sender.Provider),
		Properties: properties,
	}
}
