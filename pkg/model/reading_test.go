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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReadingJSON = `{
	"SensorId": "84:f3:eb:44:b1:9f",
	"DateTime": "2025/06/29T22:44:14z",
	"Geo": "PurpleAir-b19f",
	"Mem": 15816,
	"memfrag": 21,
	"memfb": 12424,
	"memcs": 744,
	"Id": 118,
	"lat": 40.68,
	"lon": -111.93,
	"loggingrate": 15,
	"place": "outside",
	"version": "7.04",
	"uptime": 366043,
	"rssi": -67,
	"period": 120,
	"httpsuccess": 6107,
	"httpsends": 6115,
	"hardwareversion": "2.0",
	"hardwarediscovered": "2.0+BME280+PMSX003-B+PMSX003-A",
	"wlstate": "Connected",
	"ssid": "mywifi",
	"Adc": 0.01,
	"current_temp_f": 84,
	"current_humidity": 19,
	"current_dewpoint_f": 38,
	"pressure": 865.3,
	"p25aqic": "rgb(92,236,0)",
	"pm2.5_aqi": 33,
	"pm1_0_cf_1": 5.62,
	"p_0_3_um": 1473.36,
	"pm2_5_cf_1": 8.0,
	"p_0_5_um": 412.68,
	"pm10_0_cf_1": 9.4,
	"p_1_0_um": 71.07,
	"pm1_0_atm": 5.62,
	"p_2_5_um": 5.20,
	"pm2_5_atm": 8.0,
	"p_5_0_um": 1.12,
	"pm10_0_atm": 9.4,
	"p_10_0_um": 0.7,
	"p25aqic_b": "rgb(87,237,0)",
	"pm2.5_aqi_b": 35,
	"pm1_0_cf_1_b": 6.23,
	"p_0_3_um_b": 1510.92,
	"pm2_5_cf_1_b": 8.44,
	"p_0_5_um_b": 429.36,
	"pm10_0_cf_1_b": 9.2,
	"p_1_0_um_b": 71.82,
	"pm1_0_atm_b": 6.23,
	"p_2_5_um_b": 4.41,
	"pm2_5_atm_b": 8.44,
	"p_5_0_um_b": 1.24,
	"pm10_0_atm_b": 9.2,
	"p_10_0_um_b": 0.66,
	"status_0": 2,
	"status_1": 2,
	"status_2": 2,
	"status_3": 2,
	"status_4": 0,
	"status_5": 0,
	"status_6": 2,
	"status_7": 0,
	"status_8": 0,
	"status_9": 0
}`

func TestReadingUnmarshal(t *testing.T) {
	reading := Reading{}
	require.NoError(t, json.Unmarshal([]byte(sampleReadingJSON), &reading))

	assert.Equal(t, "84:f3:eb:44:b1:9f", reading.SensorId)
	assert.Equal(t, time.Date(2025, 6, 29, 22, 44, 14, 0, time.UTC), reading.DateTime.Time)
	assert.Equal(t, "7.04", reading.Version)
	assert.Equal(t, int64(-67), reading.Rssi)
	assert.Equal(t, uint32(120), reading.Period)

	require.NotNil(t, reading.CurrentTempF)
	assert.Equal(t, int64(84), *reading.CurrentTempF)
	require.NotNil(t, reading.Pressure)
	assert.Equal(t, 865.3, *reading.Pressure)
	assert.Nil(t, reading.CurrentTempF680)
	assert.Nil(t, reading.Gas680)

	require.NotNil(t, reading.PM25AQI)
	assert.Equal(t, 33.0, *reading.PM25AQI)
	require.NotNil(t, reading.PM25AQIB)
	assert.Equal(t, 35.0, *reading.PM25AQIB)
	require.NotNil(t, reading.P03Um)
	assert.Equal(t, 1473.36, *reading.P03Um)
	require.NotNil(t, reading.P100UmB)
	assert.Equal(t, 0.66, *reading.P100UmB)

	assert.Equal(t, StatusSuccess, reading.StatusNtp)
	assert.Equal(t, StatusNotConfigured, reading.StatusTsa)
	require.NotNil(t, reading.StatusProcessor1)
	assert.Equal(t, StatusSuccess, *reading.StatusProcessor1)
	assert.Nil(t, reading.StatusProcessor2)
}

func TestSensorTime(t *testing.T) {
	st := SensorTime{}
	require.NoError(t, json.Unmarshal([]byte(`"2025/06/29T22:44:14z"`), &st))
	assert.Equal(t, time.Date(2025, 6, 29, 22, 44, 14, 0, time.UTC), st.Time)

	encoded, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-29T22:44:14Z"`, string(encoded))

	assert.Error(t, json.Unmarshal([]byte(`"2025-06-29 22:44:14"`), &st))
	assert.Error(t, json.Unmarshal([]byte(`42`), &st))
}

func TestHardware(t *testing.T) {
	reading := Reading{HardwareDiscovered: "2.0+BME280+PMSX003-B+PMSX003-A"}
	assert.Equal(t, []string{"BME280", "PMSX003-B", "PMSX003-A"}, reading.Hardware())

	reading.HardwareDiscovered = "1.0"
	assert.Empty(t, reading.Hardware())

	reading.HardwareDiscovered = ""
	assert.Empty(t, reading.Hardware())
}
