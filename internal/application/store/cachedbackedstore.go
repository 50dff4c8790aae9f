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
	"context"

	"github.com/google/uuid"

	"github.com/asgardeo/beacon/internal/application/model"
	"github.com/asgardeo/beacon/internal/system/cache"
)

// CachedBackedApplicationStore is the implementation of ApplicationStoreInterface that uses caching.
// Registrations are read on every authorize and token request, so lookups are served from an
// in-memory cache until the entry expires.
type CachedBackedApplicationStore struct {
	ClientAppCache cache.CacheInterface[*model.ClientApplication]
	Store          ApplicationStoreInterface
}

// NewCachedBackedApplicationStore creates a new instance of CachedBackedApplicationStore.
func NewCachedBackedApplicationStore(appCache cache.CacheInterface[*model.ClientApplication],
	store ApplicationStoreInterface) ApplicationStoreInterface {
	return &CachedBackedApplicationStore{
		ClientAppCache: appCache,
		Store:          store,
	}
}

// GetClientApplication retrieves a client application by client id, using cache if available.
func (as *CachedBackedApplicationStore) GetClientApplication(ctx context.Context,
	clientID uuid.UUID) (*model.ClientApplication, error) {
	cacheKey := cache.CacheKey{
		Key: clientID.String(),
	}
	if cachedApp, ok := as.ClientAppCache.Get(cacheKey); ok {
		return cachedApp, nil
	}

	app, err := as.Store.GetClientApplication(ctx, clientID)
	if err != nil || app == nil {
		return app, err
	}
	as.ClientAppCache.Set(cacheKey, app)

	return app, nil
}
