//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/handler/api"
	reqdto "petagenda/internal/handler/dto/request"
	resdto "petagenda/internal/handler/dto/response"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"
	"petagenda/tests/common/httptest"
	commandsmock "petagenda/tests/mock/commands"
	queriesmock "petagenda/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockSubscriptionCommands
	mockGenerator   *commandsmock.MockAppointmentGenerator
	mockQueries     *queriesmock.MockSubscriptionQueries
	mockApptQueries *queriesmock.MockAppointmentQueries
	handler         *api.SubscriptionHandler
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		s.Require().NoError(reqdto.RegisterValidations(v))
	}
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubscriptionCommands(s.mockCtrl)
	s.mockGenerator = commandsmock.NewMockAppointmentGenerator(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubscriptionQueries(s.mockCtrl)
	s.mockApptQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewSubscriptionHandler(s.mockCommands, s.mockGenerator, s.mockQueries, s.mockApptQueries)

	s.router.POST("/subscriptions", s.handler.CreateSubscription)
	s.router.GET("/subscriptions", s.handler.ListSubscriptions)
	s.router.GET("/subscriptions/:id", s.handler.GetSubscription)
	s.router.PATCH("/subscriptions/:id", s.handler.UpdateSubscription)
	s.router.POST("/subscriptions/:id/deactivate", s.handler.DeactivateSubscription)
	s.router.POST("/subscriptions/:id/appointments/generate", s.handler.GenerateAppointments)
	s.router.GET("/subscriptions/:id/appointments", s.handler.ListAppointments)
	s.router.POST("/subscriptions/:id/extras/toggle", s.handler.ToggleExtra)
	s.router.POST("/subscriptions/:id/extras/value", s.handler.SetExtraValue)
	s.router.POST("/subscriptions/:id/extras/quantity", s.handler.SetExtraQuantity)
}

func (s *SubscriptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

func validCreateRequest() reqdto.CreateSubscriptionRequest {
	return reqdto.CreateSubscriptionRequest{
		PetName:   "Rex",
		OwnerName: "Maria",
		Rule: reqdto.RecurrenceRuleRequest{
			Kind:          "weekly",
			AnchorWeekday: 1,
			HourOfDay:     9,
		},
		PeriodPrice: decimal.RequireFromString("380"),
	}
}

func subscriptionView(id uuid.UUID) *queries.SubscriptionView {
	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	return &queries.SubscriptionView{
		ID:            id,
		PetName:       "Rex",
		OwnerName:     "Maria",
		RuleKind:      "weekly",
		AnchorWeekday: 1,
		HourOfDay:     9,
		PeriodPrice:   decimal.RequireFromString("380"),
		Total:         decimal.RequireFromString("380"),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *SubscriptionHandlerTestSuite) TestCreateSubscription() {
	url := "/subscriptions"
	subID := uuid.New()

	s.Run("success: returns 201 with the stored view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(subID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), subID).Return(subscriptionView(subID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateRequest())

		var response resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(subID, response.ID)
		s.Equal("Rex", response.PetName)
	})

	s.Run("success: falls back to the bare id when the read side lags", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(subID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), subID).
			Return(nil, errors.New("read replica down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateRequest())

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(subID.String(), response["id"])
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		testCases := []struct {
			name   string
			mutate func(req *reqdto.CreateSubscriptionRequest)
		}{
			{name: "missing pet name", mutate: func(req *reqdto.CreateSubscriptionRequest) { req.PetName = "" }},
			{name: "missing owner name", mutate: func(req *reqdto.CreateSubscriptionRequest) { req.OwnerName = "" }},
			{name: "unknown recurrence kind", mutate: func(req *reqdto.CreateSubscriptionRequest) { req.Rule.Kind = "daily" }},
			{name: "weekday out of range", mutate: func(req *reqdto.CreateSubscriptionRequest) { req.Rule.AnchorWeekday = 8 }},
			{name: "hour out of range", mutate: func(req *reqdto.CreateSubscriptionRequest) { req.Rule.HourOfDay = 24 }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				req := validCreateRequest()
				tc.mutate(&req)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation failure",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateRequest())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SubscriptionHandlerTestSuite) TestGetSubscription() {
	subID := uuid.New()
	url := "/subscriptions/" + subID.String()

	s.Run("success: returns the subscription view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), subID).Return(subscriptionView(subID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(subID, response.ID)
		s.True(response.Active)
	})

	s.Run("error: 404 when the subscription does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), subID).
			Return(nil, queries.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Subscription not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid subscription ID format")
	})
}

func (s *SubscriptionHandlerTestSuite) TestListSubscriptions() {
	s.Run("success: returns all subscriptions", func() {
		items := []*queries.SubscriptionListItem{
			{ID: uuid.New(), PetName: "Rex", RuleKind: "weekly", Active: true},
			{ID: uuid.New(), PetName: "Luna", RuleKind: "monthly", Active: false},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions", nil)

		var response []resdto.SubscriptionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Rex", response[0].PetName)
	})

	s.Run("success: active filter narrows the listing", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).
			Return([]*queries.SubscriptionListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions?active=true", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *SubscriptionHandlerTestSuite) TestUpdateSubscription() {
	subID := uuid.New()
	url := "/subscriptions/" + subID.String()
	newPrice := decimal.RequireFromString("420")

	s.Run("success: returns the refreshed view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), subID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), subID).Return(subscriptionView(subID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateSubscriptionRequest{PeriodPrice: &newPrice})

		var response resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(subID, response.ID)
	})

	s.Run("error: 404 when the subscription does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), subID, gomock.Any()).
			Return(commands.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateSubscriptionRequest{PeriodPrice: &newPrice})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Subscription not found")
	})
}

func (s *SubscriptionHandlerTestSuite) TestDeactivateSubscription() {
	subID := uuid.New()
	url := "/subscriptions/" + subID.String() + "/deactivate"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), subID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the subscription does not exist", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), subID).
			Return(commands.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Subscription not found")
	})
}

func (s *SubscriptionHandlerTestSuite) TestGenerateAppointments() {
	subID := uuid.New()
	url := "/subscriptions/" + subID.String() + "/appointments/generate"

	s.Run("success: reports the generation result", func() {
		s.mockGenerator.EXPECT().GenerateAppointments(gomock.Any(), subID).
			Return(&commands.GenerateResult{Created: 52, CapHit: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.GenerateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(52, response.Created)
		s.False(response.CapHit)
	})

	s.Run("error: maps generator errors to proper statuses", func() {
		testCases := []struct {
			name           string
			generatorError error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "subscription not found",
				generatorError: commands.ErrSubscriptionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Subscription not found",
			},
			{
				name:           "invalid stored rule",
				generatorError: commands.ErrValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				generatorError: errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockGenerator.EXPECT().GenerateAppointments(gomock.Any(), subID).
					Return(nil, tc.generatorError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SubscriptionHandlerTestSuite) TestListAppointments() {
	subID := uuid.New()
	url := "/subscriptions/" + subID.String() + "/appointments"

	s.Run("success: returns the subscription's appointments", func() {
		views := []*queries.AppointmentView{
			{
				ID:             uuid.New(),
				SubscriptionID: &subID,
				PetName:        "Rex",
				ScheduledAt:    time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC),
				UnitPrice:      decimal.RequireFromString("95"),
				Status:         "scheduled",
			},
		}
		s.mockApptQueries.EXPECT().ListBySubscription(gomock.Any(), subID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Rex", response[0].PetName)
	})
}

func (s *SubscriptionHandlerTestSuite) TestExtras() {
	subID := uuid.New()
	base := "/subscriptions/" + subID.String() + "/extras"

	s.Run("success: toggle returns the updated snapshot", func() {
		updated := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true},
		}
		s.mockCommands.EXPECT().ApplyExtras(gomock.Any(), subID,
			commands.ExtrasAction{Op: commands.ExtrasOpToggle, Key: billing.KeyPernoite}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/toggle",
			reqdto.ExtrasActionRequest{Key: billing.KeyPernoite})

		var response struct {
			Extras billing.Snapshot `json:"extras"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Extras[billing.KeyPernoite].Enabled)
	})

	s.Run("success: value endpoint forwards the raw text", func() {
		s.mockCommands.EXPECT().ApplyExtras(gomock.Any(), subID,
			commands.ExtrasAction{Op: commands.ExtrasOpSetValue, Key: billing.KeyHidratacao, Raw: "40,00"}).
			Return(billing.Snapshot{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/value",
			reqdto.ExtrasActionRequest{Key: billing.KeyHidratacao, Value: "40,00"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when the value does not sanitize", func() {
		s.mockCommands.EXPECT().ApplyExtras(gomock.Any(), subID, gomock.Any()).
			Return(nil, commands.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/value",
			reqdto.ExtrasActionRequest{Key: billing.KeyPernoite, Value: "cinquenta"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Extra value is not a number")
	})

	s.Run("error: 404 when the subscription does not exist", func() {
		s.mockCommands.EXPECT().ApplyExtras(gomock.Any(), subID, gomock.Any()).
			Return(nil, commands.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/quantity",
			reqdto.ExtrasActionRequest{Key: billing.KeyDiasExtras, Value: "3"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Record not found")
	})

	s.Run("error: 400 when the key is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/toggle",
			reqdto.ExtrasActionRequest{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
