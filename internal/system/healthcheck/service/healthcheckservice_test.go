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
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/phoneauth/internal/system/config"
	"github.com/asgardeo/phoneauth/internal/system/database/client"
	dbmodel "github.com/asgardeo/phoneauth/internal/system/database/model"
	"github.com/asgardeo/phoneauth/internal/system/healthcheck/model"
	"github.com/asgardeo/phoneauth/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite

	dbClient *databasemock.MockDBClient
	service  *HealthCheckService
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	config.ResetRuntime()
	_ = config.InitializeRuntime("/test/phoneauth/home", &config.Config{})

	suite.dbClient = &databasemock.MockDBClient{}
	suite.service = &HealthCheckService{
		DBProvider: &databasemock.MockDBProvider{
			MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
				return suite.dbClient, nil
			},
		},
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessUp() {
	t := suite.T()

	status := suite.service.CheckReadiness()

	assert.Equal(t, model.StatusUp, status.Status)
	if assert.Len(t, status.ServiceStatus, 1) {
		assert.Equal(t, "IdentityDB", status.ServiceStatus[0].ServiceName)
		assert.Equal(t, model.StatusUp, status.ServiceStatus[0].Status)
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessDatabaseDown() {
	t := suite.T()

	suite.dbClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("connection refused")
	}

	status := suite.service.CheckReadiness()

	assert.Equal(t, model.StatusDown, status.Status)
	if assert.Len(t, status.ServiceStatus, 1) {
		assert.Equal(t, model.StatusDown, status.ServiceStatus[0].Status)
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessClientUnavailable() {
	t := suite.T()

	suite.service.DBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return nil, errors.New("unsupported database")
		},
	}

	status := suite.service.CheckReadiness()
	assert.Equal(t, model.StatusDown, status.Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessWithChallengeStore() {
	t := suite.T()

	redisServer, err := miniredis.Run()
	if err != nil {
		t.Fatal("Failed to start miniredis:", err)
	}
	defer redisServer.Close()

	config.ResetRuntime()
	_ = config.InitializeRuntime("/test/phoneauth/home", &config.Config{
		Redis: config.RedisConfig{Address: redisServer.Addr()},
	})

	status := suite.service.CheckReadiness()

	assert.Equal(t, model.StatusUp, status.Status)
	if assert.Len(t, status.ServiceStatus, 2) {
		assert.Equal(t, "ChallengeStore", status.ServiceStatus[1].ServiceName)
		assert.Equal(t, model.StatusUp, status.ServiceStatus[1].Status)
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessChallengeStoreDown() {
	t := suite.T()

	config.ResetRuntime()
	_ = config.InitializeRuntime("/test/phoneauth/home", &config.Config{
		Redis: config.RedisConfig{Address: "127.0.0.1:1"},
	})

	status := suite.service.CheckReadiness()

	assert.Equal(t, model.StatusDown, status.Status)
	if assert.Len(t, status.ServiceStatus, 2) {
		assert.Equal(t, model.StatusDown, status.ServiceStatus[1].Status)
	}
}
