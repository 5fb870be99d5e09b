package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/pedroramon/hotel-backend/internal/api/v1"
	"github.com/pedroramon/hotel-backend/internal/domain/room"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
	"github.com/pedroramon/hotel-backend/internal/pyroscope"
	"github.com/pedroramon/hotel-backend/internal/sentry"
	"github.com/pedroramon/hotel-backend/internal/service"
	"github.com/pedroramon/hotel-backend/internal/testutil"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	testutil.BaseServiceTestSuite
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	validator.NewValidator()
	s.SeedReferenceData(1, "Single", 1, "Available")

	stores := s.GetStores()
	params := service.ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		RoomTypeRepo:   stores.RoomTypeRepo,
		RoomStatusRepo: stores.RoomStatusRepo,
		RoomRepo:       stores.RoomRepo,
	}
	typeSvc := service.NewRoomTypeService(params)
	statusSvc := service.NewRoomStatusService(params)
	roomSvc := service.NewRoomService(params, typeSvc, statusSvc)

	s.router = NewRouter(
		Handlers{
			Health:     v1.NewHealthHandler(),
			Room:       v1.NewRoomHandler(roomSvc, s.GetLogger()),
			RoomType:   v1.NewRoomTypeHandler(typeSvc, s.GetLogger()),
			RoomStatus: v1.NewRoomStatusHandler(statusSvc, s.GetLogger()),
		},
		s.GetConfig(),
		s.GetLogger(),
		sentry.NewSentryService(s.GetConfig(), s.GetLogger()),
		pyroscope.NewPyroscopeService(s.GetConfig(), s.GetLogger()),
	)
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decodeError(w *httptest.ResponseRecorder) ierr.ErrorResponse {
	var resp ierr.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *RouterSuite) TestCreateRoom() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":101,"dailyRate":60.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusCreated, w.Code)
	s.NotEmpty(w.Header().Get(types.HeaderRequestID))

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.NotZero(body["id"])
	s.Equal(float64(101), body["roomNumber"])
	s.Contains(w.Body.String(), `"dailyRate":60.00`)
	s.Equal(map[string]any{"id": float64(1), "name": "Single"}, pick(body["type"], "id", "name"))
	s.Equal(map[string]any{"id": float64(1), "description": "Available"}, pick(body["status"], "id", "description"))
}

func (s *RouterSuite) TestCreateRoomRateBelowMinimum() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":102,"dailyRate":59.99,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)

	resp := s.decodeError(w)
	s.Equal(http.StatusBadRequest, resp.Status)
	s.Equal("Bad Request", resp.Error)
	s.Equal(room.MsgDailyRateBelowMinimum, resp.Message)
	s.Equal("/api/rooms", resp.Path)
	s.Nil(resp.Errors)
	s.Equal(0, s.GetStores().RoomRepo.Len())
}

func (s *RouterSuite) TestCreateRoomDuplicateNumber() {
	existing := room.New(1, 101, decimal.RequireFromString("100.00"), 1, 1)
	existing.Touch(s.GetNow())
	s.GetStores().RoomRepo.Put(existing)

	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":101,"dailyRate":200.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(room.MsgDuplicateRoomNumber, s.decodeError(w).Message)
}

func (s *RouterSuite) TestCreateRoomUnknownType() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":103,"dailyRate":80.00,"typeId":99,"statusId":1}`)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(room.MsgReferenceNotFound, s.decodeError(w).Message)
}

func (s *RouterSuite) TestCreateRoomValidation() {
	w := s.do(http.MethodPost, "/api/rooms", `{"id":5,"roomNumber":-1,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)

	resp := s.decodeError(w)
	s.Equal(validator.ValidationMessage, resp.Message)
	s.Equal("must be null", resp.Errors["id"])
	s.Equal("must be greater than or equal to 0", resp.Errors["roomNumber"])
	s.Equal("must not be null", resp.Errors["dailyRate"])
}

func (s *RouterSuite) TestCreateRoomRateTooManyDecimals() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":0,"dailyRate":60.001,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)

	resp := s.decodeError(w)
	s.Equal(validator.ValidationMessage, resp.Message)
	s.Equal(validator.MoneyOutOfBoundsMessage, resp.Errors["dailyRate"])
	s.Equal(0, s.GetStores().RoomRepo.Len())
}

func (s *RouterSuite) TestCreateRoomRateOversized() {
	for _, dailyRate := range []string{"1e400", "100000000", "123456789.5"} {
		w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":1,"dailyRate":`+dailyRate+`,"typeId":1,"statusId":1}`)
		s.Equal(http.StatusBadRequest, w.Code, dailyRate)
		s.Equal(validator.MoneyOutOfBoundsMessage, s.decodeError(w).Errors["dailyRate"], dailyRate)
	}
	s.Equal(0, s.GetStores().RoomRepo.Len())
}

func (s *RouterSuite) TestCreateRoomRateRoundTrips() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":2,"dailyRate":99999999.99,"typeId":1,"statusId":1}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"dailyRate":99999999.99`)

	w = s.do(http.MethodGet, "/api/rooms/number/2", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"dailyRate":99999999.99`)
}

func (s *RouterSuite) TestUpdateRoomRateTooManyDecimals() {
	existing := room.New(7, 200, decimal.RequireFromString("100.00"), 1, 1)
	existing.Touch(s.GetNow())
	s.GetStores().RoomRepo.Put(existing)

	w := s.do(http.MethodPut, "/api/rooms", `{"id":7,"roomNumber":200,"dailyRate":150.005,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(validator.MoneyOutOfBoundsMessage, s.decodeError(w).Errors["dailyRate"])
}

func (s *RouterSuite) TestCreateRoomMalformedBody() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(validator.ValidationMessage, s.decodeError(w).Message)
}

func (s *RouterSuite) TestUpdateRoomPreservesCreatedAt() {
	t0 := time.Date(2023, 3, 10, 8, 30, 0, 0, time.UTC)
	existing := room.New(7, 200, decimal.RequireFromString("100.00"), 1, 1)
	existing.CreatedAt = t0
	existing.UpdatedAt = t0
	s.GetStores().RoomRepo.Put(existing)

	w := s.do(http.MethodPut, "/api/rooms", `{"id":7,"roomNumber":200,"dailyRate":150.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/rooms/7", "")
	s.Equal(http.StatusOK, w.Code)

	var body struct {
		DailyRate json.Number `json:"dailyRate"`
		CreatedAt time.Time   `json:"createdAt"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(json.Number("150.00"), body.DailyRate)
	s.True(t0.Equal(body.CreatedAt))
}

func (s *RouterSuite) TestUpdateRoomToNumberInUse() {
	for id, number := range map[int64]int{7: 200, 8: 201} {
		r := room.New(id, number, decimal.RequireFromString("100.00"), 1, 1)
		r.Touch(s.GetNow())
		s.GetStores().RoomRepo.Put(r)
	}

	w := s.do(http.MethodPut, "/api/rooms", `{"id":7,"roomNumber":201,"dailyRate":150.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(room.MsgDuplicateRoomNumber, s.decodeError(w).Message)
}

func (s *RouterSuite) TestUpdateRoomRequiresID() {
	w := s.do(http.MethodPut, "/api/rooms", `{"roomNumber":201,"dailyRate":150.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must not be null", s.decodeError(w).Errors["id"])
}

func (s *RouterSuite) TestUpdateMissingRoom() {
	w := s.do(http.MethodPut, "/api/rooms", `{"id":70,"roomNumber":201,"dailyRate":150.00,"typeId":1,"statusId":1}`)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Object not found with id: 70", s.decodeError(w).Message)
}

func (s *RouterSuite) TestGetRoomNotFound() {
	w := s.do(http.MethodGet, "/api/rooms/42", "")
	s.Equal(http.StatusNotFound, w.Code)

	resp := s.decodeError(w)
	s.Equal("Not Found", resp.Error)
	s.Equal("Object not found with id: 42", resp.Message)
	s.Equal("/api/rooms/42", resp.Path)
}

func (s *RouterSuite) TestGetRoomInvalidID() {
	w := s.do(http.MethodGet, "/api/rooms/abc", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid id: abc", s.decodeError(w).Message)
}

func (s *RouterSuite) TestGetRoomByInvalidNumber() {
	w := s.do(http.MethodGet, "/api/rooms/number/abc", "")
	s.Equal(http.StatusBadRequest, w.Code)

	resp := s.decodeError(w)
	s.Equal("Invalid room number: abc", resp.Message)
	s.Equal("/api/rooms/number/abc", resp.Path)
}

func (s *RouterSuite) TestGetRoomByNumber() {
	w := s.do(http.MethodPost, "/api/rooms", `{"roomNumber":305,"dailyRate":"75.5","typeId":1,"statusId":1}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/rooms/number/305", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"dailyRate":75.50`)

	w = s.do(http.MethodGet, "/api/rooms/number/306", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Room not found with number: 306", s.decodeError(w).Message)
}

func (s *RouterSuite) TestListRooms() {
	for _, number := range []int{300, 100, 200} {
		body, _ := json.Marshal(map[string]any{"roomNumber": number, "dailyRate": 90, "typeId": 1, "statusId": 1})
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/rooms", string(body)).Code)
	}

	w := s.do(http.MethodGet, "/api/rooms", "")
	s.Equal(http.StatusOK, w.Code)

	var rooms []struct {
		ID         int64 `json:"id"`
		RoomNumber int   `json:"roomNumber"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rooms))
	s.Len(rooms, 3)
	s.Equal([]int{300, 100, 200}, []int{rooms[0].RoomNumber, rooms[1].RoomNumber, rooms[2].RoomNumber})
	s.Less(rooms[0].ID, rooms[1].ID)
	s.Less(rooms[1].ID, rooms[2].ID)
}

func (s *RouterSuite) TestDeleteRoom() {
	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/rooms/999", "").Code)
}

func (s *RouterSuite) TestRoomTypeCrud() {
	w := s.do(http.MethodPost, "/api/type-rooms", `{"name":"Double"}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = s.do(http.MethodPut, "/api/type-rooms", `{"id":`+jsonInt(created.ID)+`,"name":"Twin"}`)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"name":"Twin"`)

	w = s.do(http.MethodGet, "/api/type-rooms", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"Single"`)
	s.Contains(w.Body.String(), `"Twin"`)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/type-rooms/"+jsonInt(created.ID), "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/type-rooms/"+jsonInt(created.ID), "").Code)
}

func (s *RouterSuite) TestRoomStatusBlankDescription() {
	w := s.do(http.MethodPost, "/api/status-rooms", `{"description":"   "}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("must not be blank", s.decodeError(w).Errors["description"])
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func pick(v any, keys ...string) map[string]any {
	m, _ := v.(map[string]any)
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
