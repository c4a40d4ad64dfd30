package endpoints

import (
	"context"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockFlightService is a mock type for the FlightService type
type MockFlightService struct {
	mock.Mock
}

// ListFlights provides a mock function with given fields: ctx, req
func (_m *MockFlightService) ListFlights(ctx context.Context, req dto.ListFlightsRequest) (dto.ListFlightsResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.ListFlightsResponse), ret.Error(1)
}

// SearchFlights provides a mock function with given fields: ctx, req
func (_m *MockFlightService) SearchFlights(ctx context.Context, req dto.SearchFlightRequest) (dto.SearchFlightResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SearchFlightResponse), ret.Error(1)
}

// NewMockFlightService creates a new instance of MockFlightService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFlightService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFlightService {
	m := &MockFlightService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockSessionService is a mock type for the SessionService type
type MockSessionService struct {
	mock.Mock
}

// CreateSession provides a mock function with given fields: ctx, req
func (_m *MockSessionService) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (dto.SessionResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SessionResponse), ret.Error(1)
}

// GetSession provides a mock function with given fields: ctx, req
func (_m *MockSessionService) GetSession(ctx context.Context, req dto.GetSessionRequest) (dto.SessionResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SessionResponse), ret.Error(1)
}

// Navigate provides a mock function with given fields: ctx, req
func (_m *MockSessionService) Navigate(ctx context.Context, req dto.NavigateRequest) (dto.SessionResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SessionResponse), ret.Error(1)
}

// DispatchBooking provides a mock function with given fields: ctx, req
func (_m *MockSessionService) DispatchBooking(ctx context.Context, req dto.BookingActionRequest) (dto.SessionResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SessionResponse), ret.Error(1)
}

// DispatchProfile provides a mock function with given fields: ctx, req
func (_m *MockSessionService) DispatchProfile(ctx context.Context, req dto.ProfileActionRequest) (dto.SessionResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(dto.SessionResponse), ret.Error(1)
}

// NewMockSessionService creates a new instance of MockSessionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionService {
	m := &MockSessionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
