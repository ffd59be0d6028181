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

// Package jwt provides signing and verification of login assertion tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/asgardeo/phoneauth/internal/system/config"
)

// JWTServiceInterface defines the interface for JWT operations.
type JWTServiceInterface interface {
	GenerateJWT(subject, audience string, validityPeriod int64, claims map[string]interface{}) (string, error)
	VerifyJWT(token, audience string) (map[string]interface{}, error)
}

// jwtService is the default implementation of JWTServiceInterface.
type jwtService struct{}

// GetJWTService returns a new instance of the JWT service.
func GetJWTService() JWTServiceInterface {
	return &jwtService{}
}

// GenerateJWT generates a signed JWT for the given subject and audience with the provided claims.
func (s *jwtService) GenerateJWT(subject, audience string, validityPeriod int64,
	claims map[string]interface{}) (string, error) {
	jwtConfig := config.GetPhoneAuthRuntime().Config.JWT
	if jwtConfig.SigningKey == "" {
		return "", errors.New("jwt signing key is not configured")
	}
	if validityPeriod <= 0 {
		validityPeriod = jwtConfig.ValidityPeriod
	}

	now := time.Now()
	mapClaims := jwt.MapClaims{
		"iss": jwtConfig.Issuer,
		"sub": subject,
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(validityPeriod) * time.Second).Unix(),
	}
	for key, value := range claims {
		mapClaims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString([]byte(jwtConfig.SigningKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyJWT verifies the signature and standard claims of the given token and returns its claims.
func (s *jwtService) VerifyJWT(tokenStr, audience string) (map[string]interface{}, error) {
	jwtConfig := config.GetPhoneAuthRuntime().Config.JWT

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtConfig.SigningKey), nil
	}, jwt.WithIssuer(jwtConfig.Issuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
