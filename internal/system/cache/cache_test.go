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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/system/config"
)

type CacheTestSuite struct {
	suite.Suite
	now   time.Time
	cache *Cache[string]
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) SetupTest() {
	suite.now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.cache = NewCache[string]("TestCache", config.CacheConfig{Size: 2, TTL: 60}).(*Cache[string])
	suite.cache.timeNow = func() time.Time { return suite.now }
}

func (suite *CacheTestSuite) TestSetAndGet() {
	suite.cache.Set(CacheKey{Key: "a"}, "1")

	value, found := suite.cache.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "1", value)

	_, found = suite.cache.Get(CacheKey{Key: "missing"})
	assert.False(suite.T(), found)

	stats := suite.cache.GetStats()
	assert.Equal(suite.T(), int64(1), stats.HitCount)
	assert.Equal(suite.T(), int64(1), stats.MissCount)
	assert.Equal(suite.T(), 0.5, stats.HitRate())
	assert.Equal(suite.T(), "TestCache", suite.cache.GetName())
}

func (suite *CacheTestSuite) TestUpdateExisting() {
	suite.cache.Set(CacheKey{Key: "a"}, "1")
	suite.cache.Set(CacheKey{Key: "a"}, "2")

	value, _ := suite.cache.Get(CacheKey{Key: "a"})
	assert.Equal(suite.T(), "2", value)
	assert.Equal(suite.T(), 1, suite.cache.GetStats().Size)
}

func (suite *CacheTestSuite) TestEvictsLeastRecentlyUsed() {
	suite.cache.Set(CacheKey{Key: "a"}, "1")
	suite.cache.Set(CacheKey{Key: "b"}, "2")
	_, _ = suite.cache.Get(CacheKey{Key: "a"})
	suite.cache.Set(CacheKey{Key: "c"}, "3")

	_, found := suite.cache.Get(CacheKey{Key: "b"})
	assert.False(suite.T(), found)
	_, found = suite.cache.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), int64(1), suite.cache.GetStats().EvictCount)
}

func (suite *CacheTestSuite) TestExpiry() {
	suite.cache.Set(CacheKey{Key: "a"}, "1")
	suite.cache.Set(CacheKey{Key: "b"}, "2")

	suite.now = suite.now.Add(61 * time.Second)
	_, found := suite.cache.Get(CacheKey{Key: "a"})
	assert.False(suite.T(), found)

	suite.cache.CleanupExpired()
	assert.Equal(suite.T(), 0, suite.cache.GetStats().Size)
}

func (suite *CacheTestSuite) TestDeleteAndClear() {
	suite.cache.Set(CacheKey{Key: "a"}, "1")
	suite.cache.Set(CacheKey{Key: "b"}, "2")

	suite.cache.Delete(CacheKey{Key: "a"})
	_, found := suite.cache.Get(CacheKey{Key: "a"})
	assert.False(suite.T(), found)

	suite.cache.Clear()
	stats := suite.cache.GetStats()
	assert.Equal(suite.T(), 0, stats.Size)
	assert.Equal(suite.T(), int64(0), stats.MissCount)
}

func (suite *CacheTestSuite) TestDisabledCache() {
	disabled := NewCache[string]("Disabled", config.CacheConfig{Disabled: true})

	disabled.Set(CacheKey{Key: "a"}, "1")
	_, found := disabled.Get(CacheKey{Key: "a"})

	assert.False(suite.T(), found)
	assert.False(suite.T(), disabled.IsEnabled())
	assert.False(suite.T(), disabled.GetStats().Enabled)
	disabled.Delete(CacheKey{Key: "a"})
	disabled.Clear()
	disabled.CleanupExpired()
}
