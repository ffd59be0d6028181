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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	serverconst "github.com/asgardeo/phoneauth/internal/system/constants"
	httpservice "github.com/asgardeo/phoneauth/internal/system/http"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const (
	msg91URL                 = "https://api.msg91.com/api/v5/flow/"
	msg91AuthKeyHeaderName   = "authkey"
	msg91LoggerComponentName = "MSG91Client"
	defaultOTPParamName      = "otp"
)

// MSG91Client implements the MessageClientInterface for sending messages via the MSG91 flow API.
type MSG91Client struct {
	name     string
	authKey  string
	flowID   string
	otpParam string
}

// NewMSG91Client creates a new instance of MSG91Client.
func NewMSG91Client(senderDTO MessageSenderDTO) (MessageClientInterface, error) {
	if senderDTO.Properties[MSG91PropKeyAuthKey] == "" {
		return nil, errors.New("MSG91 auth key is required")
	}
	if senderDTO.Properties[MSG91PropKeyFlowID] == "" {
		return nil, errors.New("MSG91 flow ID is required")
	}

	otpParam := senderDTO.Properties[MSG91PropKeyOTPParam]
	if otpParam == "" {
		otpParam = defaultOTPParamName
	}

	return &MSG91Client{
		name:     senderDTO.Name,
		authKey:  senderDTO.Properties[MSG91PropKeyAuthKey],
		flowID:   senderDTO.Properties[MSG91PropKeyFlowID],
		otpParam: otpParam,
	}, nil
}

// GetName returns the name of the MSG91 client.
func (c *MSG91Client) GetName() string {
	return c.name
}

// SendSMS sends an SMS using the MSG91 flow API. The message body is bound to the
// configured template variable; recipient numbers are sent without the leading plus.
func (c *MSG91Client) SendSMS(sms SMSData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, msg91LoggerComponentName))
	logger.Debug("Sending SMS via MSG91", log.String("to", log.MaskString(sms.To)))

	recipient := map[string]string{
		"mobiles":  strings.TrimPrefix(sms.To, "+"),
		c.otpParam: sms.Body,
	}
	payload := map[string]interface{}{
		"flow_id":    c.flowID,
		"recipients": []map[string]string{recipient},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MSG91 request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, msg91URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(msg91AuthKeyHeaderName, c.authKey)

	client := httpservice.NewHTTPClient()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	logger.Debug("Received response from MSG91", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("Failed to send SMS", log.Int("statusCode", resp.StatusCode),
			log.String("response", string(bodyBytes)))
		return fmt.Errorf("failed to send SMS, status code: %d, response: %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}
