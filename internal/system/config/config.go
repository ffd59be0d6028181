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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/asgardeo/phoneauth/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CacheProperty holds the configuration of an individual cache.
type CacheProperty struct {
	Name            string `yaml:"name"`
	Disabled        bool   `yaml:"disabled"`
	Size            int    `yaml:"size"`
	TTL             int    `yaml:"ttl"`
	EvictionPolicy  string `yaml:"eviction_policy"`
	CleanupInterval int    `yaml:"cleanup_interval"`
}

// CacheConfig holds the cache configuration details.
type CacheConfig struct {
	Disabled        bool            `yaml:"disabled"`
	Type            string          `yaml:"type"`
	Size            int             `yaml:"size"`
	TTL             int             `yaml:"ttl"`
	EvictionPolicy  string          `yaml:"eviction_policy"`
	CleanupInterval int             `yaml:"cleanup_interval"`
	Properties      []CacheProperty `yaml:"properties"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
	Runtime  DataSource `yaml:"runtime"`
}

// RedisConfig holds the connection details for the redis-backed challenge store.
// When the address is empty the in-memory challenge store is used instead.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

// UserStoreConfig holds the realm-level user store configuration details.
type UserStoreConfig struct {
	ForbidDuplicatePhone bool   `yaml:"forbid_duplicate_phone"`
	RegistrationAllowed  bool   `yaml:"registration_allowed"`
	RegistrationURL      string `yaml:"registration_url"`
	DefaultRegion        string `yaml:"default_region"`
}

// JWTConfig holds the JWT configuration details for login assertions.
type JWTConfig struct {
	Issuer         string `yaml:"issuer"`
	ValidityPeriod int64  `yaml:"validity_period"`
	SigningKey     string `yaml:"signing_key"`
}

// AuthenticatorConfig holds the flow-step configuration for the phone form authenticator.
// Properties are kept as raw strings so the engine can resolve them with documented defaults.
type AuthenticatorConfig struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties"`
}

// OTPConfig holds the one-time code generation configuration details.
type OTPConfig struct {
	Length         int   `yaml:"length"`
	ValidityPeriod int64 `yaml:"validity_period"`
	UseNumericOnly bool  `yaml:"use_numeric_only"`
}

// MessageSender holds the configuration details of an SMS sender.
type MessageSender struct {
	Name       string            `yaml:"name"`
	Provider   string            `yaml:"provider"`
	Properties map[string]string `yaml:"properties"`
}

// NotificationConfig holds the configuration details of the notification senders.
type NotificationConfig struct {
	DefaultSender string          `yaml:"default_sender"`
	Senders       []MessageSender `yaml:"senders"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Security      SecurityConfig      `yaml:"security"`
	CORS          CORSConfig          `yaml:"cors"`
	Cache         CacheConfig         `yaml:"cache"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	UserStore     UserStoreConfig     `yaml:"user_store"`
	JWT           JWTConfig           `yaml:"jwt"`
	Authenticator AuthenticatorConfig `yaml:"authenticator"`
	OTP           OTPConfig           `yaml:"otp"`
	Notification  NotificationConfig  `yaml:"notification"`
}

// LoadConfig loads the configurations from the specified YAML file.
// Fields absent from the file keep their documented defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{
		UserStore: UserStoreConfig{
			ForbidDuplicatePhone: true,
		},
	}
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
