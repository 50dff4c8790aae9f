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

// Package sessionmock provides a mock implementation of the session resolver.
package sessionmock

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// SessionResolverInterfaceMock is a mock implementation of the SessionResolverInterface.
type SessionResolverInterfaceMock struct {
	mock.Mock
}

// NewSessionResolverInterfaceMock creates a mock and asserts its expectations on cleanup.
func NewSessionResolverInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionResolverInterfaceMock {
	m := &SessionResolverInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetAuthenticatedUserID provides a mock function with given fields: r.
func (m *SessionResolverInterfaceMock) GetAuthenticatedUserID(r *http.Request) (string, error) {
	ret := m.Called(r)
	return ret.String(0), ret.Error(1)
}
