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

package model

import "time"

type SensorInfo struct {
	Id              string     `json:"id,omitempty"`
	Address         string     `json:"address"`
	Firmware        string     `json:"firmware,omitempty"`
	HardwareVersion string     `json:"hardware_version,omitempty"`
	Hardware        []string   `json:"hardware,omitempty"`
	Place           string     `json:"place,omitempty"`
	UptimeSeconds   uint64     `json:"uptime_seconds,omitempty"`
	Rssi            int64      `json:"rssi,omitempty"`
	PM25AQI         *float64   `json:"pm2_5_aqi,omitempty"`
	AQICategory     string     `json:"aqi_category,omitempty"`
	LastSeen        *time.Time `json:"last_seen,omitempty"`
}

func SensorInfoFromReading(address string, reading *Reading, seen time.Time) SensorInfo {
	info := SensorInfo{Address: address}
	if reading == nil {
		return info
	}
	info.Id = reading.SensorId
	info.Firmware = reading.Version
	info.HardwareVersion = reading.HardwareVersion
	info.Hardware = reading.Hardware()
	info.Place = reading.Place
	info.UptimeSeconds = reading.Uptime
	info.Rssi = reading.Rssi
	if reading.PM25AQI != nil {
		info.PM25AQI = reading.PM25AQI
		info.AQICategory = AQICategory(*reading.PM25AQI)
	}
	if !seen.IsZero() {
		info.LastSeen = &seen
	}
	return info
}
