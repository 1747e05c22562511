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
	"strings"
	"time"
)

// the device reports e.g. "2025/06/29T22:44:14z"
const sensorTimeLayout = "2006/01/02T15:04:05"

type SensorTime struct {
	time.Time
}

func (t *SensorTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(sensorTimeLayout, strings.TrimSuffix(s, "z"))
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func (t SensorTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Reading is the payload of the PA-II local /json endpoint. Field names and
// optionality follow https://community.purpleair.com/t/sensor-json-documentation/6917
// and are kept verbatim so responses can be cross-referenced with the
// PurpleAir documentation. Fields needing extra hardware (BME environment
// sensor, PMSX003 laser counters on channel A/B) are pointers and absent
// when the board lacks the component.
type Reading struct {
	// sensor information
	SensorId           string     `json:"SensorId"`
	DateTime           SensorTime `json:"DateTime"`
	Geo                string     `json:"Geo"`
	Mem                uint64     `json:"Mem"`
	MemFrag            uint64     `json:"memfrag"`
	MemFb              uint64     `json:"memfb"`
	MemCs              uint64     `json:"memcs"`
	Id                 uint64     `json:"Id"`
	Lat                float64    `json:"lat"`
	Lon                float64    `json:"lon"`
	LoggingRate        uint64     `json:"loggingrate"`
	Place              string     `json:"place"`
	Version            string     `json:"version"`
	Uptime             uint64     `json:"uptime"`
	Rssi               int64      `json:"rssi"`
	Period             uint32     `json:"period"`
	HttpSuccess        uint64     `json:"httpsuccess"`
	HttpSends          uint64     `json:"httpsends"`
	HardwareVersion    string     `json:"hardwareversion"`
	HardwareDiscovered string     `json:"hardwarediscovered"`
	WlState            string     `json:"wlstate"`
	Ssid               string     `json:"ssid"`
	Response           *string    `json:"response,omitempty"`
	ResponseDate       *string    `json:"response_date,omitempty"`

	Adc float64 `json:"Adc"`

	// BME environment sensor
	CurrentTempF        *int64   `json:"current_temp_f,omitempty"`
	CurrentHumidity     *int64   `json:"current_humidity,omitempty"`
	CurrentDewpointF    *int64   `json:"current_dewpoint_f,omitempty"`
	Pressure            *float64 `json:"pressure,omitempty"`
	CurrentTempF680     *float64 `json:"current_temp_f_680,omitempty"`
	CurrentHumidity680  *float64 `json:"current_humidity_680,omitempty"`
	CurrentDewpointF680 *float64 `json:"current_dewpoint_f_680,omitempty"`
	Pressure680         *float64 `json:"pressure_680,omitempty"`
	Gas680              *float64 `json:"gas_680,omitempty"`

	// channel A laser counter (PMSX003-A)
	P25Aqic *string  `json:"p25aqic,omitempty"`
	PM25AQI *float64 `json:"pm2.5_aqi,omitempty"`
	PM1Cf1  *float64 `json:"pm1_0_cf_1,omitempty"`
	PM25Cf1 *float64 `json:"pm2_5_cf_1,omitempty"`
	PM10Cf1 *float64 `json:"pm10_0_cf_1,omitempty"`
	PM1Atm  *float64 `json:"pm1_0_atm,omitempty"`
	PM25Atm *float64 `json:"pm2_5_atm,omitempty"`
	PM10Atm *float64 `json:"pm10_0_atm,omitempty"`
	P03Um   *float64 `json:"p_0_3_um,omitempty"`
	P05Um   *float64 `json:"p_0_5_um,omitempty"`
	P10Um   *float64 `json:"p_1_0_um,omitempty"`
	P25Um   *float64 `json:"p_2_5_um,omitempty"`
	P50Um   *float64 `json:"p_5_0_um,omitempty"`
	P100Um  *float64 `json:"p_10_0_um,omitempty"`

	// channel B laser counter (PMSX003-B)
	P25AqicB *string  `json:"p25aqic_b,omitempty"`
	PM25AQIB *float64 `json:"pm2.5_aqi_b,omitempty"`
	PM1Cf1B  *float64 `json:"pm1_0_cf_1_b,omitempty"`
	PM25Cf1B *float64 `json:"pm2_5_cf_1_b,omitempty"`
	PM10Cf1B *float64 `json:"pm10_0_cf_1_b,omitempty"`
	PM1AtmB  *float64 `json:"pm1_0_atm_b,omitempty"`
	PM25AtmB *float64 `json:"pm2_5_atm_b,omitempty"`
	PM10AtmB *float64 `json:"pm10_0_atm_b,omitempty"`
	P03UmB   *float64 `json:"p_0_3_um_b,omitempty"`
	P05UmB   *float64 `json:"p_0_5_um_b,omitempty"`
	P10UmB   *float64 `json:"p_1_0_um_b,omitempty"`
	P25UmB   *float64 `json:"p_2_5_um_b,omitempty"`
	P50UmB   *float64 `json:"p_5_0_um_b,omitempty"`
	P100UmB  *float64 `json:"p_10_0_um_b,omitempty"`

	// background task states
	StatusNtp        Status  `json:"status_0"` // NTP time sync
	StatusLoc        Status  `json:"status_1"` // location lookup
	StatusUpd        Status  `json:"status_2"` // update check
	StatusPaa        Status  `json:"status_3"` // connection to PurpleAir servers
	StatusTsa        Status  `json:"status_4"` // ThingSpeak A (no longer used)
	StatusTssA       Status  `json:"status_5"` // ThingSpeak A secondary (no longer used)
	StatusProcessor1 *Status `json:"status_6,omitempty"`
	StatusTsb        Status  `json:"status_7"` // ThingSpeak B (no longer used)
	StatusTssB       Status  `json:"status_8"` // ThingSpeak B secondary (no longer used)
	StatusProcessor2 *Status `json:"status_10,omitempty"`
}

// Hardware lists the components the board discovered. The device encodes
// them as "<board-version>+<component>+<component>...", e.g.
// "2.0+BME280+PMSX003-B+PMSX003-A".
func (r Reading) Hardware() []string {
	_, hardware, found := strings.Cut(r.HardwareDiscovered, "+")
	if !found {
		return []string{}
	}
	return strings.Split(hardware, "+")
}
