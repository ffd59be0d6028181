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

// Package store provides the implementation for user persistence operations.
package store

import (
	"encoding/json"
	"fmt"
	"strings"

	dbmodel "github.com/asgardeo/phoneauth/internal/system/database/model"
	"github.com/asgardeo/phoneauth/internal/system/database/provider"
	"github.com/asgardeo/phoneauth/internal/user/model"
)

// UserStoreInterface defines the contract for user persistence operations.
type UserStoreInterface interface {
	GetUser(id string) (model.User, error)
	FindUsersByUsernameOrEmail(identifier string) ([]model.User, error)
	FindUsersByPhoneNumber(phoneNumber string) ([]model.User, error)
	CountUsersByUsername(username string) (int, error)
	CreateUser(user model.User, passwordHash string) error
	GetUserCredential(id string) (string, error)
}

// userStore is the default implementation of UserStoreInterface.
type userStore struct {
	dbProvider provider.DBProviderInterface
}

// NewUserStore creates a new user store backed by the identity database.
func NewUserStore(dbProvider provider.DBProviderInterface) UserStoreInterface {
	if dbProvider == nil {
		dbProvider = provider.GetDBProvider()
	}
	return &userStore{
		dbProvider: dbProvider,
	}
}

// GetUser retrieves a specific user by its ID from the database.
func (s *userStore) GetUser(id string) (model.User, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetUserByUserID, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.User{}, model.ErrUserNotFound
	}
	if len(results) != 1 {
		return model.User{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildUserFromResultRow(results[0])
}

// FindUsersByUsernameOrEmail retrieves every user whose username or email matches the identifier.
func (s *userStore) FindUsersByUsernameOrEmail(identifier string) ([]model.User, error) {
	return s.queryUsers(QueryGetUsersByUsernameOrEmail, identifier)
}

// FindUsersByPhoneNumber retrieves every user holding the given canonical phone number.
func (s *userStore) FindUsersByPhoneNumber(phoneNumber string) ([]model.User, error) {
	return s.queryUsers(QueryGetUsersByPhoneNumber, phoneNumber)
}

// CountUsersByUsername returns the number of users holding the given username.
func (s *userStore) CountUsersByUsername(username string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryCountUsersByUsername, username)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}
	return total, nil
}

// CreateUser handles the user creation in the database.
func (s *userStore) CreateUser(user model.User, passwordHash string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	attributes, err := json.Marshal(user.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateUser,
		user.ID,
		user.Username,
		user.Email,
		user.Enabled,
		user.Attributes[model.AttributePhoneNumber],
		string(attributes),
		passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateUser
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetUserCredential retrieves the stored password hash of a user.
func (s *userStore) GetUserCredential(id string) (string, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return "", fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetUserCredential, id)
	if err != nil {
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return "", model.ErrUserNotFound
	}

	hash, ok := results[0]["password_hash"].(string)
	if !ok {
		if raw, isBytes := results[0]["password_hash"].([]byte); isBytes {
			return string(raw), nil
		}
		return "", fmt.Errorf("failed to parse password_hash as string")
	}
	return hash, nil
}

// queryUsers runs a user select query and builds the result rows.
func (s *userStore) queryUsers(query dbmodel.DBQuery, arg string) ([]model.User, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	users := make([]model.User, 0, len(results))
	for _, row := range results {
		user, err := buildUserFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build user from result row: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// buildUserFromResultRow constructs a user from a query result row.
func buildUserFromResultRow(row map[string]interface{}) (model.User, error) {
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("failed to parse user_id as string")
	}

	username, ok := row["username"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("failed to parse username as string")
	}

	email := ""
	if v, ok := row["email"].(string); ok {
		email = v
	}

	enabled, err := parseBoolColumn(row["enabled"])
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse enabled column: %w", err)
	}

	var attributes string
	switch v := row["attributes"].(type) {
	case string:
		attributes = v
	case []byte:
		attributes = string(v)
	case nil:
		attributes = "{}"
	default:
		return model.User{}, fmt.Errorf("failed to parse attributes as string")
	}

	user := model.User{
		ID:       userID,
		Username: username,
		Email:    email,
		Enabled:  enabled,
	}

	if err := json.Unmarshal([]byte(attributes), &user.Attributes); err != nil {
		return model.User{}, fmt.Errorf("failed to unmarshal attributes")
	}

	return user, nil
}

// parseBoolColumn normalizes boolean columns across postgres and sqlite result types.
func parseBoolColumn(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case string:
		return strings.EqualFold(v, "true") || v == "1", nil
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected type %T", value)
	}
}

// isUniqueViolation reports whether the database error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // lib/pq
		strings.Contains(msg, "UNIQUE constraint failed") // modernc sqlite
}
