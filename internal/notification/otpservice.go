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
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/asgardeo/phoneauth/internal/otp"
	"github.com/asgardeo/phoneauth/internal/system/config"
	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const otpServiceLoggerComponentName = "OTPSendService"

const (
	numericOTPCharset      = "9245378016"
	alphanumericOTPCharset = "KIGXHOYSPRWCEFMVUQLZDNABJT9245378016"
	defaultOTPLength       = 6
	defaultOTPValidity     = 2 * time.Minute
)

// OTPSendServiceInterface defines the contract for generating and delivering one-time codes.
type OTPSendServiceInterface interface {
	// SendOTP generates a code, records it as an outstanding challenge for the phone
	// number and delivers it via the configured SMS sender.
	SendOTP(phoneNumber string, purpose otp.Purpose) *serviceerror.ServiceError
}

// otpSendService is the default implementation of OTPSendServiceInterface.
type otpSendService struct {
	otpProvider  otp.ProviderInterface
	otpConfig    config.OTPConfig
	notification config.NotificationConfig
}

// NewOTPSendService creates a new OTP send service.
func NewOTPSendService(otpProvider otp.ProviderInterface, otpConfig config.OTPConfig,
	notification config.NotificationConfig) OTPSendServiceInterface {
	if otpProvider == nil {
		otpProvider = otp.NewProvider(nil)
	}
	return &otpSendService{
		otpProvider:  otpProvider,
		otpConfig:    otpConfig,
		notification: notification,
	}
}

// SendOTP generates, records and delivers a one-time code for the phone number.
func (s *otpSendService) SendOTP(phoneNumber string, purpose otp.Purpose) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, otpServiceLoggerComponentName))

	if phoneNumber == "" {
		return &ErrorInvalidRecipient
	}

	sender := s.resolveSender()
	if sender == nil {
		logger.Error("No message sender configured",
			log.String("defaultSender", s.notification.DefaultSender))
		return &ErrorSenderNotFound
	}

	client, err := NewMessageClient(SenderDTOFromConfig(*sender))
	if err != nil {
		logger.Error("Failed to create message client", log.Error(err),
			log.String("sender", sender.Name))
		return &ErrorInvalidSenderConfig
	}

	code, err := s.generateCode()
	if err != nil {
		logger.Error("Failed to generate code", log.Error(err))
		return &ErrorInternalServerError
	}

	validity := s.validityPeriod()
	if svcErr := s.otpProvider.StartChallenge(phoneNumber, purpose, code, validity); svcErr != nil {
		return svcErr
	}

	message := fmt.Sprintf("Your verification code is: %s. This code will expire in %d minutes.",
		code, int(validity.Minutes()))
	if err := client.SendSMS(SMSData{To: phoneNumber, Body: message}); err != nil {
		logger.Error("Failed to send SMS", log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("One-time code sent", log.String("to", log.MaskString(phoneNumber)),
		log.String("purpose", string(purpose)))
	return nil
}

// resolveSender returns the configured default sender, or the first sender when
// no default is named.
func (s *otpSendService) resolveSender() *config.MessageSender {
	if s.notification.DefaultSender != "" {
		for i := range s.notification.Senders {
			if s.notification.Senders[i].Name == s.notification.DefaultSender {
				return &s.notification.Senders[i]
			}
		}
		return nil
	}
	if len(s.notification.Senders) > 0 {
		return &s.notification.Senders[0]
	}
	return nil
}

// generateCode generates a random code based on the configurations.
func (s *otpSendService) generateCode() (string, error) {
	charset := alphanumericOTPCharset
	if s.otpConfig.UseNumericOnly {
		charset = numericOTPCharset
	}

	length := s.otpConfig.Length
	if length <= 0 {
		length = defaultOTPLength
	}

	chars := []rune(charset)
	result := make([]rune, length)
	for i := 0; i < length; i++ {
		max := big.NewInt(int64(len(chars)))
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[n.Int64()]
	}

	return string(result), nil
}

func (s *otpSendService) validityPeriod() time.Duration {
	if s.otpConfig.ValidityPeriod <= 0 {
		return defaultOTPValidity
	}
	return time.Duration(s.otpConfig.ValidityPeriod) * time.Second
}
