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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/application/constants"
	"github.com/asgardeo/beacon/internal/application/model"
	"github.com/asgardeo/beacon/internal/system/error/serviceerror"
	"github.com/asgardeo/beacon/tests/mocks/applicationmock"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	mockStore *applicationmock.ApplicationStoreInterfaceMock
	service   ApplicationServiceInterface
}

func TestApplicationServiceSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}

func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.mockStore = applicationmock.NewApplicationStoreInterfaceMock(suite.T())
	suite.service = NewApplicationService(suite.mockStore)
}

func (suite *ApplicationServiceTestSuite) TestGetClientApplication() {
	clientID := uuid.New()
	app := &model.ClientApplication{ClientID: clientID}
	suite.mockStore.On("GetClientApplication", mock.Anything, clientID).Return(app, nil)

	result, svcErr := suite.service.GetClientApplication(context.Background(), clientID.String())

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), app, result)
}

func (suite *ApplicationServiceTestSuite) TestGetClientApplication_InvalidClientID() {
	for _, clientID := range []string{"", "not-a-guid", "12345"} {
		result, svcErr := suite.service.GetClientApplication(context.Background(), clientID)

		assert.Nil(suite.T(), result)
		assert.Equal(suite.T(), &constants.ErrorInvalidClientID, svcErr)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "GetClientApplication", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestGetClientApplication_NotFound() {
	clientID := uuid.New()
	suite.mockStore.On("GetClientApplication", mock.Anything, clientID).
		Return(nil, constants.ErrApplicationNotFound)

	result, svcErr := suite.service.GetClientApplication(context.Background(), clientID.String())

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &constants.ErrorApplicationNotFound, svcErr)
}

func (suite *ApplicationServiceTestSuite) TestGetClientApplication_StoreFailure() {
	clientID := uuid.New()
	suite.mockStore.On("GetClientApplication", mock.Anything, clientID).
		Return(nil, errors.New("database down"))

	result, svcErr := suite.service.GetClientApplication(context.Background(), clientID.String())

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
}
