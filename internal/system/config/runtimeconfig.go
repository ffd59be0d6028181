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

package config

import "sync"

// PhoneAuthRuntime holds the runtime configuration for the PhoneAuth server.
type PhoneAuthRuntime struct {
	Home   string `yaml:"home"`
	Config Config `yaml:"config"`
}

var (
	runtimeConfig *PhoneAuthRuntime
	once          sync.Once
)

// InitializeRuntime initializes the PhoneAuthRuntime configuration.
func InitializeRuntime(home string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &PhoneAuthRuntime{
			Home:   home,
			Config: *config,
		}
	})

	return nil
}

// GetPhoneAuthRuntime returns the PhoneAuthRuntime configuration.
func GetPhoneAuthRuntime() *PhoneAuthRuntime {
	if runtimeConfig == nil {
		panic("PhoneAuthRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetRuntime resets the PhoneAuthRuntime.
// This should only be used in tests to reset the singleton state.
func ResetRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
