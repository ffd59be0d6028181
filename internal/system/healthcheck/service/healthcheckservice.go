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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/phoneauth/internal/system/config"
	dbmodel "github.com/asgardeo/phoneauth/internal/system/database/model"
	"github.com/asgardeo/phoneauth/internal/system/database/provider"
	"github.com/asgardeo/phoneauth/internal/system/healthcheck/model"
	"github.com/asgardeo/phoneauth/internal/system/log"
)

const loggerComponentName = "HealthCheckService"

const redisPingTimeout = 2 * time.Second

var (
	instance *HealthCheckService
	once     sync.Once
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{
			DBProvider: provider.GetDBProvider(),
		}
	})
	return instance
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	identityDBStatus := model.ServiceStatus{
		ServiceName: "IdentityDB",
		Status:      hcs.checkDatabaseStatus("identity", queryIdentityDBTable),
	}

	statuses := []model.ServiceStatus{identityDBStatus}

	redisConfig := config.GetPhoneAuthRuntime().Config.Redis
	if redisConfig.Address != "" {
		statuses = append(statuses, model.ServiceStatus{
			ServiceName: "ChallengeStore",
			Status:      hcs.checkRedisStatus(redisConfig),
		})
	}

	status := model.StatusUp
	for _, serviceStatus := range statuses {
		if serviceStatus.Status == model.StatusDown {
			status = model.StatusDown
			break
		}
	}
	return model.ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *HealthCheckService) checkDatabaseStatus(dbname string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := hcs.DBProvider.GetDBClient(dbname)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	if _, err := dbClient.Query(query); err != nil {
		logger.Error("Failed to execute readiness query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}

// checkRedisStatus pings the configured redis instance.
func (hcs *HealthCheckService) checkRedisStatus(redisConfig config.RedisConfig) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Address,
		Password: redisConfig.Password,
		DB:       redisConfig.Database,
	})
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Error("Failed to close redis client", log.Error(closeErr))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis ping failed", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
