package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bitmark-inc/covid19-estimator-api/schema"
)

// pointers tell a missing field apart from a zero value
type regionParams struct {
	Name                     string   `json:"name"`
	AvgDailyIncomePopulation *float64 `json:"avgDailyIncomePopulation" binding:"required"`
	AvgDailyIncomeInUSD      *float64 `json:"avgDailyIncomeInUSD" binding:"required"`
}

type estimateParams struct {
	Region            *regionParams `json:"region" binding:"required"`
	ReportedCases     *int64        `json:"reportedCases" binding:"required"`
	TimeToElapse      *float64      `json:"timeToElapse" binding:"required"`
	TotalHospitalBeds *int64        `json:"totalHospitalBeds" binding:"required"`
}

func (p estimateParams) input() schema.Input {
	return schema.Input{
		Region: schema.Region{
			Name:                     p.Region.Name,
			AvgDailyIncomePopulation: *p.Region.AvgDailyIncomePopulation,
			AvgDailyIncomeInUSD:      *p.Region.AvgDailyIncomeInUSD,
		},
		ReportedCases:     *p.ReportedCases,
		TimeToElapse:      *p.TimeToElapse,
		TotalHospitalBeds: *p.TotalHospitalBeds,
	}
}

func (s *Server) estimate(c *gin.Context) {
	var params estimateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			s.reject(c, errorInvalidParameters, err)
		} else {
			s.reject(c, errorCannotParseRequest, err)
		}
		return
	}

	input := params.input()
	if err := s.estimator.Validate(input); err != nil {
		s.reject(c, validationError(err), err)
		return
	}

	result := s.estimator.Estimate(input)
	s.scope.Counter("estimates").Inc(1)

	c.JSON(http.StatusOK, result)
}

func (s *Server) reject(c *gin.Context, obj ErrorResponse, err error) {
	s.scope.Tagged(map[string]string{
		"reason": strconv.FormatInt(obj.Code, 10),
	}).Counter("rejected_estimates").Inc(1)

	abortWithError(c, http.StatusBadRequest, obj, err)
}
