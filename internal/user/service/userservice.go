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

// Package service provides the implementation for user directory operations.
package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/asgardeo/phoneauth/internal/system/error/serviceerror"
	"github.com/asgardeo/phoneauth/internal/system/log"
	"github.com/asgardeo/phoneauth/internal/system/utils"
	"github.com/asgardeo/phoneauth/internal/user/constants"
	"github.com/asgardeo/phoneauth/internal/user/model"
	"github.com/asgardeo/phoneauth/internal/user/store"
)

const loggerComponentName = "UserService"

// UserServiceInterface defines the interface for the user directory service.
type UserServiceInterface interface {
	GetUser(userID string) (*model.User, *serviceerror.ServiceError)
	FindByUsernameOrEmail(identifier string) (*model.User, *serviceerror.ServiceError)
	FindByPhoneNumber(phoneNumber string) (*model.User, *serviceerror.ServiceError)
	IsUsernameTaken(username string) (bool, *serviceerror.ServiceError)
	CreateUser(username, email, password string) (*model.User, *serviceerror.ServiceError)
	CreateUserWithPhone(username, phoneNumber string) (*model.User, *serviceerror.ServiceError)
	VerifyPassword(userID, password string) *serviceerror.ServiceError
}

// userService is the default implementation of UserServiceInterface.
type userService struct {
	store store.UserStoreInterface
}

// NewUserService creates a new instance of the user directory service.
func NewUserService(userStore store.UserStoreInterface) UserServiceInterface {
	if userStore == nil {
		userStore = store.NewUserStore(nil)
	}
	return &userService{
		store: userStore,
	}
}

// GetUser returns the user for the given user id.
func (s *userService) GetUser(userID string) (*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if userID == "" {
		return nil, &constants.ErrorUserNotFound
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to retrieve user", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	return &user, nil
}

// FindByUsernameOrEmail resolves a single user by username or email address.
// When more than one record matches, the returned error names the colliding field.
func (s *userService) FindByUsernameOrEmail(identifier string) (*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	users, err := s.store.FindUsersByUsernameOrEmail(identifier)
	if err != nil {
		logger.Error("Failed to look up user by username or email", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	switch len(users) {
	case 0:
		return nil, &constants.ErrorUserNotFound
	case 1:
		return &users[0], nil
	default:
		// The lookup can collide on either field; report the one that did.
		emailMatches := 0
		for _, u := range users {
			if strings.EqualFold(u.Email, identifier) {
				emailMatches++
			}
		}
		if emailMatches > 1 {
			return nil, &constants.ErrorDuplicateEmail
		}
		return nil, &constants.ErrorDuplicateUsername
	}
}

// FindByPhoneNumber resolves a single user by canonical phone number.
func (s *userService) FindByPhoneNumber(phoneNumber string) (*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	users, err := s.store.FindUsersByPhoneNumber(phoneNumber)
	if err != nil {
		logger.Error("Failed to look up user by phone number", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	switch len(users) {
	case 0:
		return nil, &constants.ErrorUserNotFound
	case 1:
		return &users[0], nil
	default:
		return nil, &constants.ErrorDuplicatePhoneNumber
	}
}

// IsUsernameTaken reports whether a user already holds the given username.
func (s *userService) IsUsernameTaken(username string) (bool, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	count, err := s.store.CountUsersByUsername(username)
	if err != nil {
		logger.Error("Failed to count users by username", log.Error(err))
		return false, &constants.ErrorInternalServerError
	}
	return count > 0, nil
}

// CreateUser creates a user with a password credential.
func (s *userService) CreateUser(username, email, password string) (*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	user := model.User{
		ID:       utils.GenerateUUID(),
		Username: username,
		Email:    email,
		Enabled:  true,
	}

	passwordHash := ""
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}
		passwordHash = string(hash)
	}

	if err := s.store.CreateUser(user, passwordHash); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			return nil, &constants.ErrorUsernameAlreadyTaken
		}
		logger.Error("Failed to create user", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	return &user, nil
}

// CreateUserWithPhone creates an enabled user carrying a verified phone number.
// The phone attributes are written with the record itself, not as a follow-up mutation.
func (s *userService) CreateUserWithPhone(username, phoneNumber string) (
	*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	user := model.User{
		ID:       utils.GenerateUUID(),
		Username: username,
		Enabled:  true,
		Attributes: map[string]string{
			model.AttributePhoneNumber:         phoneNumber,
			model.AttributePhoneNumberVerified: "true",
		},
	}

	if err := s.store.CreateUser(user, ""); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			return nil, &constants.ErrorUsernameAlreadyTaken
		}
		logger.Error("Failed to create user with phone number", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Info("Created user from verified phone number",
		log.String("userId", user.ID), log.String("phoneNumber", log.MaskString(phoneNumber)))
	return &user, nil
}

// VerifyPassword validates the given password against the stored credential of the user.
func (s *userService) VerifyPassword(userID, password string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	hash, err := s.store.GetUserCredential(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return &constants.ErrorUserNotFound
		}
		logger.Error("Failed to retrieve user credential", log.Error(err))
		return &constants.ErrorInternalServerError
	}
	if hash == "" {
		return &constants.ErrorInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return &constants.ErrorInvalidCredentials
	}
	return nil
}
