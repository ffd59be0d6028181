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

import "github.com/asgardeo/phoneauth/internal/system/database/model"

var (
	// QueryGetUserByUserID is the query to get a user by user ID.
	QueryGetUserByUserID = model.DBQuery{
		ID:    "PAQ-USER_MGT-01",
		Query: "SELECT USER_ID, USERNAME, EMAIL, ENABLED, ATTRIBUTES FROM \"USER\" WHERE USER_ID = $1",
	}
	// QueryGetUsersByUsernameOrEmail is the query to get users matching a username or email address.
	QueryGetUsersByUsernameOrEmail = model.DBQuery{
		ID:    "PAQ-USER_MGT-02",
		Query: "SELECT USER_ID, USERNAME, EMAIL, ENABLED, ATTRIBUTES FROM \"USER\" WHERE USERNAME = $1 OR EMAIL = $1",
	}
	// QueryGetUsersByPhoneNumber is the query to get users matching a canonical phone number.
	QueryGetUsersByPhoneNumber = model.DBQuery{
		ID:    "PAQ-USER_MGT-03",
		Query: "SELECT USER_ID, USERNAME, EMAIL, ENABLED, ATTRIBUTES FROM \"USER\" WHERE PHONE_NUMBER = $1",
	}
	// QueryCountUsersByUsername is the query to count users holding a username.
	QueryCountUsersByUsername = model.DBQuery{
		ID:    "PAQ-USER_MGT-04",
		Query: "SELECT COUNT(*) AS total FROM \"USER\" WHERE USERNAME = $1",
	}
	// QueryCreateUser is the query to create a new user.
	QueryCreateUser = model.DBQuery{
		ID: "PAQ-USER_MGT-05",
		Query: "INSERT INTO \"USER\" (USER_ID, USERNAME, EMAIL, ENABLED, PHONE_NUMBER, ATTRIBUTES, " +
			"PASSWORD_HASH) VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}
	// QueryGetUserCredential is the query to get the stored password hash of a user.
	QueryGetUserCredential = model.DBQuery{
		ID:    "PAQ-USER_MGT-06",
		Query: "SELECT PASSWORD_HASH FROM \"USER\" WHERE USER_ID = $1",
	}
)
