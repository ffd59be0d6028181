/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/phoneauth/internal/system/config"
)

type TestString string
type TestInt int

type CacheStoreTestSuite struct {
	suite.Suite
}

func TestCacheStoreSuite(t *testing.T) {
	suite.Run(t, new(CacheStoreTestSuite))
}

func (suite *CacheStoreTestSuite) SetupSuite() {
	mockConfig := &config.Config{
		Cache: config.CacheConfig{
			Disabled: true, // Disable cache globally for tests
		},
	}
	config.ResetRuntime()
	err := config.InitializeRuntime("/test/phoneauth/home", mockConfig)
	if err != nil {
		suite.T().Fatal("Failed to initialize runtime:", err)
	}
}

func (suite *CacheStoreTestSuite) TearDownSuite() {
	config.ResetRuntime()
}

func (suite *CacheStoreTestSuite) SetupTest() {
	resetCacheStore()
}

func (suite *CacheStoreTestSuite) TestGetCacheStore() {
	t := suite.T()

	store1 := getCacheStore()
	assert.NotNil(t, store1, "Cache store should not be nil")
	assert.NotNil(t, store1.caches, "Cache map should not be nil")

	store2 := getCacheStore()
	assert.Same(t, store1, store2, "getCacheStore should return the same instance (singleton)")

	assert.Empty(t, store1.caches, "Cache map should be empty initially")
}

func (suite *CacheStoreTestSuite) TestGetCache() {
	t := suite.T()

	cacheName := "testCache"
	c1 := GetCache[string](cacheName)
	assert.NotNil(t, c1, "Cache should not be nil")

	c2 := GetCache[string](cacheName)
	assert.Same(t, c1, c2, "GetCache should return the same instance for the same type and name")

	differentCacheName := "anotherCache"
	c3 := GetCache[string](differentCacheName)
	assert.NotNil(t, c3, "Cache should not be nil")
	assert.NotSame(t, c1, c3, "Different cache names should create different caches")
}

func (suite *CacheStoreTestSuite) TestGetCacheMultipleTypes() {
	t := suite.T()

	cacheName := "testMultiTypeCache"

	cString := GetCache[string](cacheName)
	cInt := GetCache[int](cacheName)
	cTestString := GetCache[TestString](cacheName)
	cTestInt := GetCache[TestInt](cacheName)

	assert.NotNil(t, cString, "String cache should not be nil")
	assert.NotNil(t, cInt, "Int cache should not be nil")
	assert.NotNil(t, cTestString, "TestString cache should not be nil")
	assert.NotNil(t, cTestInt, "TestInt cache should not be nil")

	// Different types create different instances even with the same cache name.
	assert.NotSame(t, cString, cInt, "Different types should create different caches")
	assert.NotSame(t, cString, cTestString, "Different types should create different caches")
	assert.NotSame(t, cInt, cTestInt, "Different types should create different caches")
	assert.NotSame(t, cTestString, cTestInt, "Different types should create different caches")

	cStringSame := GetCache[string](cacheName)
	assert.Same(t, cString, cStringSame, "Same type and name should return the same cache")
}

func (suite *CacheStoreTestSuite) TestResetCacheStore() {
	t := suite.T()

	cacheName := "testResetCache"
	c := GetCache[string](cacheName)
	assert.NotNil(t, c, "Cache should not be nil")

	store := getCacheStore()
	assert.NotEmpty(t, store.caches, "Cache map should not be empty after creating a cache")

	resetCacheStore()

	assert.Empty(t, store.caches, "Cache map should be empty after reset")

	cNew := GetCache[string](cacheName)
	assert.NotNil(t, cNew, "New cache should not be nil")
	assert.NotSame(t, c, cNew, "After reset, should get a new cache instance")
}

func (suite *CacheStoreTestSuite) TestConcurrentAccess() {
	t := suite.T()

	numGoroutines := 10
	done := make(chan bool, numGoroutines)
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			// Use different cache names to avoid collisions
			cacheName := "concurrentCache" + string(rune('A'+index))
			c := GetCache[string](cacheName)
			assert.NotNil(t, c, "Cache should not be nil even with concurrent access")
			done <- true
		}(i)
	}

	wg.Wait()
	close(done)

	completedCount := 0
	for range done {
		completedCount++
	}

	assert.Equal(t, numGoroutines, completedCount, "All goroutines should complete successfully")

	store := getCacheStore()
	assert.Equal(t, numGoroutines, len(store.caches), "Cache map should have an entry for each goroutine")
}

func (suite *CacheStoreTestSuite) TestTypeMismatch() {
	t := suite.T()

	cacheName := "typeMismatchCache"

	store := getCacheStore()

	var mismatched interface{} = &Cache[int]{} // Int type
	typeName := "string"
	cacheKey := cacheName + ":" + typeName

	// Directly inject the mismatched type
	store.mu.Lock()
	store.caches[cacheKey] = mismatched
	store.mu.Unlock()

	c := GetCache[string](cacheName)
	assert.Nil(t, c, "Should return nil when there's a type mismatch")
}

func (suite *CacheStoreTestSuite) TestStartCleanupRoutine() {
	t := suite.T()

	cleanupInterval := 50 * time.Millisecond

	fake := newFakeInternalCache[string](true)
	cache := &Cache[string]{
		enabled:       true,
		InternalCache: fake,
	}

	cache.startCleanupRoutine(cleanupInterval)

	// Wait for the cleanup to be triggered at least once.
	assert.Eventually(t, func() bool {
		cache.mu.RLock()
		defer cache.mu.RUnlock()
		return fake.cleanupCalls > 0
	}, cleanupInterval*10, cleanupInterval)
}

func (suite *CacheStoreTestSuite) TestGetCleanupInterval() {
	testCases := []struct {
		name          string
		cacheConfig   config.CacheConfig
		cacheProperty config.CacheProperty
		expected      time.Duration
	}{
		{
			name:          "PropertyInterval",
			cacheConfig:   config.CacheConfig{CleanupInterval: 600},
			cacheProperty: config.CacheProperty{CleanupInterval: 120},
			expected:      120 * time.Second,
		},
		{
			name:        "ConfigInterval",
			cacheConfig: config.CacheConfig{CleanupInterval: 600},
			expected:    600 * time.Second,
		},
		{
			name:     "DefaultInterval",
			expected: defaultCleanupInterval * time.Second,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, getCleanupInterval(tc.cacheConfig, tc.cacheProperty))
		})
	}
}

func (suite *CacheStoreTestSuite) TestNewCache() {
	t := suite.T()

	// Save and restore original config
	originalConfig := config.GetPhoneAuthRuntime().Config
	defer func() {
		config.ResetRuntime()
		err := config.InitializeRuntime("/test/phoneauth/home", &originalConfig)
		assert.NoError(t, err)
	}()

	// Test 1: Test with cache globally disabled
	disabledConfig := config.Config{
		Cache: config.CacheConfig{
			Disabled: true,
		},
	}
	config.ResetRuntime()
	err := config.InitializeRuntime("/test/phoneauth/home", &disabledConfig)
	assert.NoError(t, err)

	c1 := newCache[string]("testDisabledCache")
	assert.NotNil(t, c1)
	assert.False(t, c1.IsEnabled())

	// Test 2: Test with specific cache disabled
	enabledConfig := config.Config{
		Cache: config.CacheConfig{
			Disabled: false,
			Properties: []config.CacheProperty{
				{
					Name:     "testSpecificDisabledCache",
					Disabled: true,
				},
			},
		},
	}
	config.ResetRuntime()
	err = config.InitializeRuntime("/test/phoneauth/home", &enabledConfig)
	assert.NoError(t, err)

	c2 := newCache[string]("testSpecificDisabledCache")
	assert.NotNil(t, c2)
	assert.False(t, c2.IsEnabled())

	// Test 3: Test with in-memory cache type
	inMemConfig := config.Config{
		Cache: config.CacheConfig{
			Disabled: false,
			Type:     "in-memory",
			Properties: []config.CacheProperty{
				{
					Name: "testInMemCache",
					Size: 100,
					TTL:  300,
				},
			},
		},
	}
	config.ResetRuntime()
	err = config.InitializeRuntime("/test/phoneauth/home", &inMemConfig)
	assert.NoError(t, err)

	c3 := newCache[string]("testInMemCache")
	assert.NotNil(t, c3)
	assert.True(t, c3.IsEnabled())

	// Test 4: Test with unknown cache type
	unknownTypeConfig := config.Config{
		Cache: config.CacheConfig{
			Disabled: false,
			Type:     "unknown-type",
		},
	}
	config.ResetRuntime()
	err = config.InitializeRuntime("/test/phoneauth/home", &unknownTypeConfig)
	assert.NoError(t, err)

	c4 := newCache[string]("testUnknownTypeCache")
	assert.NotNil(t, c4)
	assert.True(t, c4.IsEnabled())
}
