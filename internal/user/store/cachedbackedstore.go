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

package store

import (
	"github.com/asgardeo/phoneauth/internal/system/cache"
	"github.com/asgardeo/phoneauth/internal/user/model"
)

// CachedBackedUserStore is the implementation of UserStoreInterface that uses caching.
// Credentials are never cached; credential reads always hit the store.
type CachedBackedUserStore struct {
	UserByIDCache    cache.CacheInterface[*model.User]
	UserByPhoneCache cache.CacheInterface[*model.User]
	Store            UserStoreInterface
}

// NewCachedBackedUserStore creates a new instance of CachedBackedUserStore.
func NewCachedBackedUserStore() UserStoreInterface {
	return &CachedBackedUserStore{
		UserByIDCache:    cache.GetCache[*model.User]("UserByIDCache"),
		UserByPhoneCache: cache.GetCache[*model.User]("UserByPhoneCache"),
		Store:            NewUserStore(nil),
	}
}

// GetUser retrieves a user by id, using the cache if available.
func (us *CachedBackedUserStore) GetUser(id string) (model.User, error) {
	cacheKey := cache.CacheKey{
		Key: id,
	}
	if cachedUser, ok := us.UserByIDCache.Get(cacheKey); ok {
		return *cachedUser, nil
	}

	user, err := us.Store.GetUser(id)
	if err != nil {
		return user, err
	}
	us.cacheUser(&user)

	return user, nil
}

// FindUsersByUsernameOrEmail resolves users by username or email. Results are not
// cached since the lookup must observe duplicate records.
func (us *CachedBackedUserStore) FindUsersByUsernameOrEmail(identifier string) ([]model.User, error) {
	return us.Store.FindUsersByUsernameOrEmail(identifier)
}

// FindUsersByPhoneNumber resolves users by canonical phone number, using the
// cache for the single-match case.
func (us *CachedBackedUserStore) FindUsersByPhoneNumber(phoneNumber string) ([]model.User, error) {
	cacheKey := cache.CacheKey{
		Key: phoneNumber,
	}
	if cachedUser, ok := us.UserByPhoneCache.Get(cacheKey); ok {
		return []model.User{*cachedUser}, nil
	}

	users, err := us.Store.FindUsersByPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}
	if len(users) == 1 {
		us.cacheUser(&users[0])
	}

	return users, nil
}

// CountUsersByUsername returns the number of users holding the username.
func (us *CachedBackedUserStore) CountUsersByUsername(username string) (int, error) {
	return us.Store.CountUsersByUsername(username)
}

// CreateUser creates a new user and caches it.
func (us *CachedBackedUserStore) CreateUser(user model.User, passwordHash string) error {
	if err := us.Store.CreateUser(user, passwordHash); err != nil {
		return err
	}
	us.cacheUser(&user)
	return nil
}

// GetUserCredential returns the stored credential of the user.
func (us *CachedBackedUserStore) GetUserCredential(id string) (string, error) {
	return us.Store.GetUserCredential(id)
}

// cacheUser stores the user in the id and phone caches.
func (us *CachedBackedUserStore) cacheUser(user *model.User) {
	if user == nil {
		return
	}
	_ = us.UserByIDCache.Set(cache.CacheKey{Key: user.ID}, user)
	if phoneNumber := user.PhoneNumber(); phoneNumber != "" {
		_ = us.UserByPhoneCache.Set(cache.CacheKey{Key: phoneNumber}, user)
	}
}
