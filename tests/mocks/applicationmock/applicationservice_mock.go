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

package applicationmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/beacon/internal/application/model"
	"github.com/asgardeo/beacon/internal/system/error/serviceerror"
)

// ApplicationServiceInterfaceMock is a mock implementation of the ApplicationServiceInterface.
type ApplicationServiceInterfaceMock struct {
	mock.Mock
}

// NewApplicationServiceInterfaceMock creates a mock and asserts its expectations on cleanup.
func NewApplicationServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ApplicationServiceInterfaceMock {
	m := &ApplicationServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetClientApplication provides a mock function with given fields: ctx, clientID.
func (m *ApplicationServiceInterfaceMock) GetClientApplication(ctx context.Context,
	clientID string) (*model.ClientApplication, *serviceerror.ServiceError) {
	ret := m.Called(ctx, clientID)

	var app *model.ClientApplication
	if ret.Get(0) != nil {
		app = ret.Get(0).(*model.ClientApplication)
	}
	var svcErr *serviceerror.ServiceError
	if ret.Get(1) != nil {
		svcErr = ret.Get(1).(*serviceerror.ServiceError)
	}
	return app, svcErr
}
