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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/system/config"
)

const testRecipient = "+15551234567"

type OTPSendServiceTestSuite struct {
	suite.Suite

	server      *httptest.Server
	sentBodies  []string
	otpProvider otp.ProviderInterface
}

func TestOTPSendServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OTPSendServiceTestSuite))
}

func (suite *OTPSendServiceTestSuite) SetupTest() {
	suite.sentBodies = nil
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		suite.sentBodies = append(suite.sentBodies, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	suite.otpProvider = otp.NewProvider(otp.NewInMemoryChallengeStore())
}

func (suite *OTPSendServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *OTPSendServiceTestSuite) customSender(name string) config.MessageSender {
	return config.MessageSender{
		Name:     name,
		Provider: string(MessageProviderTypeCustom),
		Properties: map[string]string{
			CustomPropKeyURL:         suite.server.URL,
			CustomPropKeyContentType: "JSON",
		},
	}
}

func (suite *OTPSendServiceTestSuite) TestSendOTPDeliversGeneratedCode() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider,
		config.OTPConfig{Length: 6, UseNumericOnly: true, ValidityPeriod: 120},
		config.NotificationConfig{Senders: []config.MessageSender{suite.customSender("hook")}})

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.Nil(t, svcErr)

	challenge, svcErr := suite.otpProvider.Outstanding(testRecipient, otp.PurposeAuth)
	assert.Nil(t, svcErr)
	if assert.NotNil(t, challenge, "the generated code is recorded as an outstanding challenge") {
		assert.Len(t, challenge.Code, 6)
		for _, r := range challenge.Code {
			assert.Contains(t, "0123456789", string(r))
		}

		if assert.Len(t, suite.sentBodies, 1) {
			assert.Contains(t, suite.sentBodies[0], challenge.Code)
			assert.Contains(t, suite.sentBodies[0], "2 minutes")
		}
	}
}

func (suite *OTPSendServiceTestSuite) TestSendOTPAlphanumericCode() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider,
		config.OTPConfig{Length: 8},
		config.NotificationConfig{Senders: []config.MessageSender{suite.customSender("hook")}})

	svcErr := service.SendOTP(testRecipient, otp.PurposeRegistration)
	assert.Nil(t, svcErr)

	challenge, svcErr := suite.otpProvider.Outstanding(testRecipient, otp.PurposeRegistration)
	assert.Nil(t, svcErr)
	if assert.NotNil(t, challenge) {
		assert.Len(t, challenge.Code, 8)
	}
}

func (suite *OTPSendServiceTestSuite) TestSendOTPEmptyRecipient() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{},
		config.NotificationConfig{Senders: []config.MessageSender{suite.customSender("hook")}})

	svcErr := service.SendOTP("", otp.PurposeAuth)
	assert.NotNil(t, svcErr)
	assert.Equal(t, ErrorInvalidRecipient.Code, svcErr.Code)
	assert.Empty(t, suite.sentBodies)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPResolvesNamedDefaultSender() {
	t := suite.T()

	// The named default wins over the first sender in the list.
	badSender := config.MessageSender{
		Name:       "broken",
		Provider:   string(MessageProviderTypeCustom),
		Properties: map[string]string{CustomPropKeyContentType: "JSON"},
	}
	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{},
		config.NotificationConfig{
			DefaultSender: "hook",
			Senders:       []config.MessageSender{badSender, suite.customSender("hook")},
		})

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.Nil(t, svcErr)
	assert.Len(t, suite.sentBodies, 1)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPDefaultSenderMissing() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{},
		config.NotificationConfig{
			DefaultSender: "no-such-sender",
			Senders:       []config.MessageSender{suite.customSender("hook")},
		})

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.NotNil(t, svcErr)
	assert.Equal(t, ErrorSenderNotFound.Code, svcErr.Code)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPNoSendersConfigured() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{}, config.NotificationConfig{})

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.NotNil(t, svcErr)
	assert.Equal(t, ErrorSenderNotFound.Code, svcErr.Code)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPInvalidSenderConfig() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{},
		config.NotificationConfig{Senders: []config.MessageSender{{
			Name:     "twilio-sender",
			Provider: string(MessageProviderTypeTwilio),
			Properties: map[string]string{
				TwilioPropKeyAccountSID: "not-a-sid",
			},
		}}})

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.NotNil(t, svcErr)
	assert.Equal(t, ErrorInvalidSenderConfig.Code, svcErr.Code)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPDeliveryFailure() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider, config.OTPConfig{},
		config.NotificationConfig{Senders: []config.MessageSender{suite.customSender("hook")}})
	suite.server.Close()

	svcErr := service.SendOTP(testRecipient, otp.PurposeAuth)
	assert.NotNil(t, svcErr)
	assert.Equal(t, ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *OTPSendServiceTestSuite) TestSendOTPReplacesOutstandingChallenge() {
	t := suite.T()

	service := NewOTPSendService(suite.otpProvider,
		config.OTPConfig{UseNumericOnly: true},
		config.NotificationConfig{Senders: []config.MessageSender{suite.customSender("hook")}})

	assert.Nil(t, service.SendOTP(testRecipient, otp.PurposeAuth))
	first, _ := suite.otpProvider.Outstanding(testRecipient, otp.PurposeAuth)

	assert.Nil(t, service.SendOTP(testRecipient, otp.PurposeAuth))
	second, _ := suite.otpProvider.Outstanding(testRecipient, otp.PurposeAuth)

	if assert.NotNil(t, first) && assert.NotNil(t, second) {
		assert.Len(t, suite.sentBodies, 2)
		assert.Contains(t, suite.sentBodies[1], second.Code)
	}
}
