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
	"fmt"
)

// Status is the state of one of the device background tasks (NTP sync,
// location lookup, update check, upstream connections). The device reports
// them as numeric status_N fields.
type Status uint8

const (
	StatusNotConfigured Status = 0
	StatusInProgress    Status = 1
	StatusSuccess       Status = 2
	StatusError         Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusNotConfigured:
		return "not-configured"
	case StatusInProgress:
		return "in-progress"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var number uint64
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if number > uint64(StatusError) {
		return fmt.Errorf("invalid status number: %d", number)
	}
	*s = Status(number)
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint8(s))
}
