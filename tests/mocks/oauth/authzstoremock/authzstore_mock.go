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

// Package authzstoremock provides a mock implementation of the authorization store.
package authzstoremock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
)

// AuthorizationStoreInterfaceMock is a mock implementation of the AuthorizationStoreInterface.
type AuthorizationStoreInterfaceMock struct {
	mock.Mock
}

// NewAuthorizationStoreInterfaceMock creates a mock and asserts its expectations on cleanup.
func NewAuthorizationStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthorizationStoreInterfaceMock {
	m := &AuthorizationStoreInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreatePendingAuthorization provides a mock function with given fields: ctx, pending.
func (m *AuthorizationStoreInterfaceMock) CreatePendingAuthorization(ctx context.Context,
	pending model.PendingAuthorization) error {
	ret := m.Called(ctx, pending)
	return ret.Error(0)
}

// GetPendingAuthorization provides a mock function with given fields: ctx, id.
func (m *AuthorizationStoreInterfaceMock) GetPendingAuthorization(ctx context.Context,
	id string) (model.PendingAuthorization, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.PendingAuthorization), ret.Error(1)
}

// GrantAuthorization provides a mock function with given fields: ctx, granted.
func (m *AuthorizationStoreInterfaceMock) GrantAuthorization(ctx context.Context,
	granted model.GrantedAuthorization) error {
	ret := m.Called(ctx, granted)
	return ret.Error(0)
}

// GetAuthorizationByCode provides a mock function with given fields: ctx, code.
func (m *AuthorizationStoreInterfaceMock) GetAuthorizationByCode(ctx context.Context,
	code string) (model.GrantedAuthorization, error) {
	ret := m.Called(ctx, code)
	return ret.Get(0).(model.GrantedAuthorization), ret.Error(1)
}

// RedeemAuthorizationCode provides a mock function with given fields: ctx, code.
func (m *AuthorizationStoreInterfaceMock) RedeemAuthorizationCode(ctx context.Context, code string) error {
	ret := m.Called(ctx, code)
	return ret.Error(0)
}

// GetAuthorizationByAccessToken provides a mock function with given fields: ctx, accessToken.
func (m *AuthorizationStoreInterfaceMock) GetAuthorizationByAccessToken(ctx context.Context,
	accessToken string) (model.GrantedAuthorization, error) {
	ret := m.Called(ctx, accessToken)
	return ret.Get(0).(model.GrantedAuthorization), ret.Error(1)
}

// DeleteExpiredAuthorizations provides a mock function with given fields: ctx, pendingCutoff, grantedCutoff.
func (m *AuthorizationStoreInterfaceMock) DeleteExpiredAuthorizations(ctx context.Context, pendingCutoff,
	grantedCutoff time.Time) (int64, error) {
	ret := m.Called(ctx, pendingCutoff, grantedCutoff)
	return ret.Get(0).(int64), ret.Error(1)
}

// Ping provides a mock function with given fields: ctx.
func (m *AuthorizationStoreInterfaceMock) Ping(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}
