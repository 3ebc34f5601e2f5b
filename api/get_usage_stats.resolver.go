package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type getUsageStatsQuery struct {
	Days int `form:"days,default=30" binding:"min=1,max=365"`
}

func (m ApiHandler) getUsageStats(c *gin.Context) {
	if m.ApiRequestRepository == nil {
		returnErrorJsonCode(errors.New("request tracking is not enabled"), c, http.StatusNotFound)
		return
	}
	var q getUsageStatsQuery
	if !bindQuery(c, &q) {
		return
	}

	since := m.currentTime().Add(-time.Duration(q.Days) * 24 * time.Hour)
	stats, err := m.ApiRequestRepository.GetUsageStats(c.Request.Context(), nil, since)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
