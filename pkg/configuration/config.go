/*
 * Copyright 2026 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package configuration

import "time"

type Config struct {
	DeviceUrls     []string      `env_var:"DEVICE_URLS"`
	DeviceUrlFile  string        `env_var:"DEVICE_URL_FILE"`
	PollInterval   time.Duration `env_var:"POLL_INTERVAL"`
	RequestTimeout time.Duration `env_var:"REQUEST_TIMEOUT"`
	LiveReadings   bool          `env_var:"LIVE_READINGS"`
	LogLevel       string        `env_var:"LOG_LEVEL"`
	LogHandler     string        `env_var:"LOG_HANDLER"`
	ServerPort     uint          `env_var:"SERVER_PORT"`
	KafkaBootstrap string        `env_var:"KAFKA_BOOTSTRAP"`
	KafkaTopic     string        `env_var:"KAFKA_TOPIC"`
	RedisUrl       string        `env_var:"REDIS_URL"`
	HistoryLimit   int64         `env_var:"HISTORY_LIMIT"`
}
