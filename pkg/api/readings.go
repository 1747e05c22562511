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
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/controller"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
	"github.com/gin-gonic/gin"
)

// getReadings godoc
// @Summary      Readings
// @Description  Latest reading of every sensor that has reported so far
// @Produce      json
// @Success      200 {array} model.Reading
// @Failure      500
// @Router       /readings [GET]
func getReadings(controller *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, model.ReadingsPath, func(gc *gin.Context) {
		gc.JSON(http.StatusOK, controller.Readings())
	}
}

// getReading godoc
// @Summary      Reading
// @Description  Latest reading of one sensor
// @Produce      json
// @Param        id path string true "SensorId"
// @Success      200 {object} model.Reading
// @Failure      404
// @Failure      500
// @Router       /readings/{id} [GET]
func getReading(controller *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, model.ReadingsPath + "/:id", func(gc *gin.Context) {
		reading, err := controller.LatestReading(gc.Param("id"))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, reading)
	}
}

// getReadingHistory godoc
// @Summary      Reading History
// @Description  Recent readings of one sensor, newest first
// @Produce      json
// @Param        id path string true "SensorId"
// @Param        limit query int false "maximum number of readings"
// @Success      200 {array} model.Reading
// @Failure      400
// @Failure      404
// @Failure      500
// @Router       /readings/{id}/history [GET]
func getReadingHistory(controller *controller.Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, model.ReadingsPath + "/:id/history", func(gc *gin.Context) {
		var limit int64
		if raw := gc.Query("limit"); raw != "" {
			var err error
			limit, err = strconv.ParseInt(raw, 10, 64)
			if err != nil || limit < 0 {
				_ = gc.Error(errors.Join(model.ErrBadRequest, fmt.Errorf("invalid limit %q", raw)))
				return
			}
		}
		history, err := controller.ReadingHistory(gc.Request.Context(), gc.Param("id"), limit)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, history)
	}
}
