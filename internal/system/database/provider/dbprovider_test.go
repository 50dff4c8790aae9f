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

package provider

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
	home string
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
}

func (suite *DBProviderTestSuite) sqliteSource(name string) config.DataSource {
	return config.DataSource{
		Type:            model.DBTypeSQLite,
		Path:            name,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 60,
	}
}

func (suite *DBProviderTestSuite) TestGetDBClient_SQLite() {
	provider := NewDBProvider(config.DatabaseConfig{
		Identity: suite.sqliteSource("identity.db"),
		Runtime:  suite.sqliteSource("runtime.db"),
	}, suite.home)
	defer func() {
		assert.NoError(suite.T(), provider.Close())
	}()

	identityClient, err := provider.GetDBClient(constants.IdentityDB)
	require.NoError(suite.T(), err)
	assert.NoError(suite.T(), identityClient.Ping(context.Background()))

	again, err := provider.GetDBClient(constants.IdentityDB)
	require.NoError(suite.T(), err)
	assert.Same(suite.T(), identityClient, again)

	runtimeClient, err := provider.GetDBClient(constants.RuntimeDB)
	require.NoError(suite.T(), err)
	assert.NotSame(suite.T(), identityClient, runtimeClient)

	_, err = runtimeClient.Execute(context.Background(),
		model.DBQuery{ID: "TST-00001", Query: "CREATE TABLE T (ID INTEGER)"})
	assert.NoError(suite.T(), err)
	assert.FileExists(suite.T(), filepath.Join(suite.home, "runtime.db"))
}

func (suite *DBProviderTestSuite) TestGetDBClient_UnknownName() {
	provider := NewDBProvider(config.DatabaseConfig{}, suite.home)

	_, err := provider.GetDBClient("analytics")
	assert.Error(suite.T(), err)
}

func (suite *DBProviderTestSuite) TestGetDBClient_UnsupportedType() {
	provider := NewDBProvider(config.DatabaseConfig{
		Identity: config.DataSource{Type: "oracle"},
	}, suite.home)

	_, err := provider.GetDBClient(constants.IdentityDB)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "unsupported data source type")
}

func (suite *DBProviderTestSuite) TestGetDBConfig_Postgres() {
	provider := &DBProvider{home: suite.home}
	cfg, err := provider.getDBConfig(config.DataSource{
		Type:     model.DBTypePostgres,
		Hostname: "localhost",
		Port:     5432,
		Name:     "identitydb",
		Username: "beacon",
		Password: "beacon",
		SSLMode:  "disable",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.DBTypePostgres, cfg.driverName)
	assert.Equal(suite.T(),
		"host=localhost port=5432 user=beacon password=beacon dbname=identitydb sslmode=disable", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfig_SQLiteOptions() {
	provider := &DBProvider{home: "/opt/beacon"}
	cfg, err := provider.getDBConfig(config.DataSource{
		Type:    model.DBTypeSQLite,
		Path:    "repository/database/runtimedb.db",
		Options: "_pragma=journal_mode(WAL)",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/opt/beacon/repository/database/runtimedb.db?_pragma=journal_mode(WAL)", cfg.dsn)
}
