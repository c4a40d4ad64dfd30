package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockFlightCacher is a mock type for the FlightCacher type
type MockFlightCacher struct {
	mock.Mock
}

// GetCacheKey provides a mock function with given fields: date, filter
func (_m *MockFlightCacher) GetCacheKey(date string, filter dto.FilterState) string {
	ret := _m.Called(date, filter)

	var r0 string
	if rf, ok := ret.Get(0).(func(string, dto.FilterState) string); ok {
		r0 = rf(date, filter)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// GetFlights provides a mock function with given fields: ctx, key
func (_m *MockFlightCacher) GetFlights(ctx context.Context, key string) ([]dto.Flight, error) {
	ret := _m.Called(ctx, key)

	var r0 []dto.Flight
	if rf, ok := ret.Get(0).(func(context.Context, string) []dto.Flight); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dto.Flight)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetFlights provides a mock function with given fields: ctx, key, flights, expiration
func (_m *MockFlightCacher) SetFlights(ctx context.Context, key string, flights []dto.Flight, expiration time.Duration) error {
	ret := _m.Called(ctx, key, flights, expiration)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []dto.Flight, time.Duration) error); ok {
		r0 = rf(ctx, key, flights, expiration)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockFlightCacher creates a new instance of MockFlightCacher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFlightCacher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFlightCacher {
	m := &MockFlightCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
