package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-auction-bot/src/controller"
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

func TestGetHealthCheck(t *testing.T) {
	assertion := assert.New(t)

	botServiceMock := new(BotServiceMock)
	botServiceMock.On("IsAuthorized", "uuid-7").Return(true)

	healthServiceMock := new(HealthServiceMock)
	healthServiceMock.On("HealthCheck").Return(model.BotHealth{
		Bot:           model.Bot{Id: 7, BotUuid: "uuid-7"},
		DbStatus:      model.DbStatusOk,
		RedisStatus:   model.RedisStatusOk,
		GameStatus:    model.GameStatusOk,
		LearnedShapes: 3,
	})

	botController := controller.BotController{
		HealthService: healthServiceMock,
		BotService:    botServiceMock,
	}

	req := httptest.NewRequest("GET", "/health/check?botUuid=uuid-7", nil)
	res := httptest.NewRecorder()

	botController.GetHealthCheckAction(res, req)

	assertion.Equal(http.StatusOK, res.Code)
	assertion.Contains(res.Body.String(), `"gameStatus":"ok"`)
	assertion.Contains(res.Body.String(), `"learnedShapes":3`)
}

func TestGetHealthCheckForbidden(t *testing.T) {
	assertion := assert.New(t)

	botServiceMock := new(BotServiceMock)
	botServiceMock.On("IsAuthorized", mock.Anything).Return(false)

	healthServiceMock := new(HealthServiceMock)

	botController := controller.BotController{
		HealthService: healthServiceMock,
		BotService:    botServiceMock,
	}

	req := httptest.NewRequest("GET", "/health/check?botUuid=guessed-uuid", nil)
	res := httptest.NewRecorder()

	botController.GetHealthCheckAction(res, req)

	assertion.Equal(http.StatusForbidden, res.Code)
	healthServiceMock.AssertNotCalled(t, "HealthCheck")
}
