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

package api

import (
	"net/http"

	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/controller"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
	"github.com/gin-gonic/gin"
)

// getSensors godoc
// @Summary      Sensors
// @Description  All configured sensors with device info from their latest reading
// @Produce      json
// @Success      200 {array} model.SensorInfo
// @Failure      500
// @Router       /sensors [GET]
func getSensors(controller *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, model.SensorsPath, func(gc *gin.Context) {
		gc.JSON(http.StatusOK, controller.Sensors())
	}
}
