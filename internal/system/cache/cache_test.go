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

package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/phoneauth/internal/system/config"
)

const (
	testValue = "testValue"
)

// fakeInternalCache is a configurable in-package fake for internalCacheInterface.
type fakeInternalCache[T any] struct {
	name      string
	enabled   bool
	setErr    error
	deleteErr error
	clearErr  error
	stats     CacheStat

	entries      map[string]T
	cleanupCalls int
}

func newFakeInternalCache[T any](enabled bool) *fakeInternalCache[T] {
	return &fakeInternalCache[T]{
		enabled: enabled,
		entries: make(map[string]T),
	}
}

func (f *fakeInternalCache[T]) Set(key CacheKey, value T) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key.ToString()] = value
	return nil
}

func (f *fakeInternalCache[T]) Get(key CacheKey) (T, bool) {
	value, found := f.entries[key.ToString()]
	return value, found
}

func (f *fakeInternalCache[T]) Delete(key CacheKey) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.entries, key.ToString())
	return nil
}

func (f *fakeInternalCache[T]) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.entries = make(map[string]T)
	return nil
}

func (f *fakeInternalCache[T]) IsEnabled() bool {
	return f.enabled
}

func (f *fakeInternalCache[T]) GetStats() CacheStat {
	return f.stats
}

func (f *fakeInternalCache[T]) CleanupExpired() {
	f.cleanupCalls++
}

func (f *fakeInternalCache[T]) GetName() string {
	return f.name
}

type CacheTestSuite struct {
	suite.Suite
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) TestIsEnabled() {
	t := suite.T()

	enabledCache := &Cache[string]{
		enabled:       true,
		InternalCache: newFakeInternalCache[string](true),
	}
	assert.True(t, enabledCache.IsEnabled())

	disabledCache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
	}
	assert.False(t, disabledCache.IsEnabled())
}

func (suite *CacheTestSuite) TestSet() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	key := CacheKey{Key: "testKey"}

	err := cache.Set(key, testValue)
	assert.NoError(t, err)

	stored, found := fake.Get(key)
	assert.True(t, found)
	assert.Equal(t, testValue, stored)

	// Set is a no-op on a disabled cache.
	disabledCache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
	}
	err = disabledCache.Set(key, testValue)
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestSetWithError() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	fake.setErr = fmt.Errorf("set error")

	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	// Internal errors are logged, not returned.
	err := cache.Set(CacheKey{Key: "testKey"}, testValue)
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestGet() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	key := CacheKey{Key: "testKey"}

	_ = fake.Set(key, testValue)
	value, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, testValue, value)

	value2, found2 := cache.Get(CacheKey{Key: "missingKey"})
	assert.False(t, found2)
	assert.Equal(t, "", value2)

	disabledCache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
	}
	value3, found3 := disabledCache.Get(key)
	assert.False(t, found3)
	assert.Equal(t, "", value3)
}

func (suite *CacheTestSuite) TestDelete() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	key := CacheKey{Key: "testKey"}
	_ = fake.Set(key, testValue)

	err := cache.Delete(key)
	assert.NoError(t, err)

	_, found := fake.Get(key)
	assert.False(t, found)

	disabledCache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
	}
	err = disabledCache.Delete(key)
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestDeleteWithError() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	fake.deleteErr = fmt.Errorf("delete error")

	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	err := cache.Delete(CacheKey{Key: "testKey"})
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestClear() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	_ = fake.Set(CacheKey{Key: "testKey"}, testValue)

	err := cache.Clear()
	assert.NoError(t, err)
	assert.Empty(t, fake.entries)

	disabledCache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
	}
	err = disabledCache.Clear()
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestClearWithError() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	fake.clearErr = fmt.Errorf("clear error")

	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	err := cache.Clear()
	assert.NoError(t, err)
}

func (suite *CacheTestSuite) TestGetCacheProperty() {
	testCases := []struct {
		name             string
		cacheName        string
		cacheConfig      config.CacheConfig
		expectedProperty config.CacheProperty
	}{
		{
			name:      "ExistingProperty",
			cacheName: "testCache",
			cacheConfig: config.CacheConfig{
				Properties: []config.CacheProperty{
					{
						Name:     "testCache",
						Disabled: false,
						Size:     100,
						TTL:      60,
					},
				},
			},
			expectedProperty: config.CacheProperty{
				Name:     "testCache",
				Disabled: false,
				Size:     100,
				TTL:      60,
			},
		},
		{
			name:      "NonExistingProperty",
			cacheName: "nonExistingCache",
			cacheConfig: config.CacheConfig{
				Properties: []config.CacheProperty{
					{
						Name:     "testCache",
						Disabled: false,
						Size:     100,
						TTL:      60,
					},
				},
			},
			expectedProperty: config.CacheProperty{},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			property := getCacheProperty(tc.cacheConfig, tc.cacheName)
			assert.Equal(t, tc.expectedProperty, property)
		})
	}
}

func (suite *CacheTestSuite) TestGetEvictionPolicy() {
	testCases := []struct {
		name                   string
		cacheConfig            config.CacheConfig
		cacheProperty          config.CacheProperty
		expectedEvictionPolicy evictionPolicy
	}{
		{
			name: "PropertyLFUEvictionPolicy",
			cacheConfig: config.CacheConfig{
				EvictionPolicy: string(evictionPolicyLRU),
			},
			cacheProperty: config.CacheProperty{
				EvictionPolicy: string(evictionPolicyLFU),
			},
			expectedEvictionPolicy: evictionPolicyLFU,
		},
		{
			name: "ConfigLRUEvictionPolicy",
			cacheConfig: config.CacheConfig{
				EvictionPolicy: string(evictionPolicyLRU),
			},
			cacheProperty:          config.CacheProperty{},
			expectedEvictionPolicy: evictionPolicyLRU,
		},
		{
			name:                   "DefaultLRUEvictionPolicy",
			cacheConfig:            config.CacheConfig{},
			cacheProperty:          config.CacheProperty{},
			expectedEvictionPolicy: evictionPolicyLRU,
		},
		{
			name: "InvalidEvictionPolicy",
			cacheConfig: config.CacheConfig{
				EvictionPolicy: "INVALID",
			},
			cacheProperty:          config.CacheProperty{},
			expectedEvictionPolicy: evictionPolicyLRU,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			evictionPolicy := getEvictionPolicy(tc.cacheConfig, tc.cacheProperty)
			assert.Equal(t, tc.expectedEvictionPolicy, evictionPolicy)
		})
	}
}

func (suite *CacheTestSuite) TestGetCacheType() {
	testCases := []struct {
		name              string
		cacheConfig       config.CacheConfig
		expectedCacheType cacheType
	}{
		{
			name: "InMemoryCacheType",
			cacheConfig: config.CacheConfig{
				Type: string(cacheTypeInMemory),
			},
			expectedCacheType: cacheTypeInMemory,
		},
		{
			name:              "DefaultCacheType",
			cacheConfig:       config.CacheConfig{},
			expectedCacheType: cacheTypeInMemory,
		},
		{
			name: "UnknownCacheType",
			cacheConfig: config.CacheConfig{
				Type: "unknown",
			},
			expectedCacheType: cacheTypeInMemory,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			cacheType := getCacheType(tc.cacheConfig)
			assert.Equal(t, tc.expectedCacheType, cacheType)
		})
	}
}

func (suite *CacheTestSuite) TestDisabledInnerCache() {
	t := suite.T()

	fake := newFakeInternalCache[string](false)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	key := CacheKey{Key: "testKey"}

	// All operations are no-ops when the inner cache is disabled.
	err := cache.Set(key, testValue)
	assert.NoError(t, err)
	assert.Empty(t, fake.entries)

	value, found := cache.Get(key)
	assert.False(t, found)
	assert.Equal(t, "", value)

	err = cache.Delete(key)
	assert.NoError(t, err)

	err = cache.Clear()
	assert.NoError(t, err)

	cache.CleanupExpired()
	assert.Equal(t, 0, fake.cleanupCalls)
}

func (suite *CacheTestSuite) TestMultipleValues() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	keys := []CacheKey{
		{Key: "key1"},
		{Key: "key2"},
		{Key: "key3"},
	}
	values := []string{"value1", "value2", "value3"}

	for i := range keys {
		err := cache.Set(keys[i], values[i])
		assert.NoError(t, err)
	}

	for i := range keys {
		value, found := cache.Get(keys[i])
		assert.True(t, found)
		assert.Equal(t, values[i], value)
	}

	_, found := cache.Get(CacheKey{Key: "key4"})
	assert.False(t, found)
}

func (suite *CacheTestSuite) TestCleanupExpired() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	cache.CleanupExpired()
	assert.Equal(t, 1, fake.cleanupCalls)
}

func (suite *CacheTestSuite) TestGetStats() {
	t := suite.T()

	fake := newFakeInternalCache[string](true)
	fake.stats = CacheStat{
		Enabled:    true,
		Size:       10,
		MaxSize:    100,
		HitCount:   5,
		MissCount:  3,
		HitRate:    0.625,
		EvictCount: 1,
	}

	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	assert.Equal(t, fake.stats, cache.InternalCache.GetStats())
}

func (suite *CacheTestSuite) TestGetName() {
	t := suite.T()

	cacheName := "testCacheName"
	cache := &Cache[string]{
		enabled:   true,
		cacheName: cacheName,
	}

	assert.Equal(t, cacheName, cache.GetName(), "GetName should return the cache name")
}

func (suite *CacheTestSuite) TestCacheKeyToString() {
	t := suite.T()

	key := CacheKey{Key: "testKey"}
	assert.Equal(t, "testKey", key.ToString(), "ToString should return the Key value")

	emptyKey := CacheKey{Key: ""}
	assert.Equal(t, "", emptyKey.ToString(), "ToString should return empty string for empty Key")
}

func (suite *CacheTestSuite) TestCacheWithNilInternalCache() {
	t := suite.T()

	cache := &Cache[string]{
		enabled:       false,
		InternalCache: nil,
		cacheName:     "nilInternalCache",
	}

	key := CacheKey{Key: "testKey"}

	// All operations should be no-ops and not panic.
	err := cache.Set(key, testValue)
	assert.NoError(t, err)

	value, found := cache.Get(key)
	assert.False(t, found)
	assert.Equal(t, "", value)

	err = cache.Delete(key)
	assert.NoError(t, err)

	err = cache.Clear()
	assert.NoError(t, err)

	cache.CleanupExpired()
}
