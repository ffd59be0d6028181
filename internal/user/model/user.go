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

// Package model defines the data structures for user management.
package model

import "errors"

// Attribute names stored alongside the user record.
const (
	// AttributePhoneNumber is the attribute holding the canonical phone number of the user.
	AttributePhoneNumber = "phoneNumber"
	// AttributePhoneNumberVerified is the attribute marking the phone number as verified.
	AttributePhoneNumberVerified = "phoneNumberVerified"
)

// User represents a user in the directory.
type User struct {
	ID         string            `json:"id,omitempty"`
	Username   string            `json:"username"`
	Email      string            `json:"email,omitempty"`
	Enabled    bool              `json:"enabled"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// PhoneNumber returns the phone number attribute of the user, if any.
func (u *User) PhoneNumber() string {
	if u.Attributes == nil {
		return ""
	}
	return u.Attributes[AttributePhoneNumber]
}

// ErrUserNotFound is returned when the user is not found in the directory.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when an insert collides with an existing username.
var ErrDuplicateUser = errors.New("user already exists")
