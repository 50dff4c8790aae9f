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

package usermock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/beacon/internal/user/model"
)

// UserStoreInterfaceMock is a mock implementation of the UserStoreInterface.
type UserStoreInterfaceMock struct {
	mock.Mock
}

// NewUserStoreInterfaceMock creates a mock and asserts its expectations on cleanup.
func NewUserStoreInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStoreInterfaceMock {
	m := &UserStoreInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetUser provides a mock function with given fields: ctx, siteID, userID.
func (m *UserStoreInterfaceMock) GetUser(ctx context.Context, siteID, userID string) (*model.User, error) {
	ret := m.Called(ctx, siteID, userID)

	var user *model.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*model.User)
	}
	return user, ret.Error(1)
}
