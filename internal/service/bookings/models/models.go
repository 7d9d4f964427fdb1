package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

var (
	// ErrInvalidDecision возвращается при некорректном решении тренера
	ErrInvalidDecision = errors.New("invalid decision, expected confirmed or rejected")
)

// Request модели

// DateViewRequest запрос занятости на календарный день
type DateViewRequest struct {
	Date    time.Time
	CourtID *string
}

// Response модели

// PricingResponse зафиксированная стоимость бронирования
type PricingResponse struct {
	BasePrice        float64 `json:"basePrice"`
	WeekendSurcharge float64 `json:"weekendSurcharge"`
	TimeMultiplier   float64 `json:"timeMultiplier"`
	EquipmentFee     float64 `json:"equipmentFee"`
	CoachFee         float64 `json:"coachFee"`
	Total            float64 `json:"total"`
	IsPeak           bool    `json:"isPeak"`
	IsWeekend        bool    `json:"isWeekend"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string          `json:"id"`
	CourtID   string          `json:"courtId"`
	UserID    string          `json:"userId"`
	CoachID   *string         `json:"coachId,omitempty"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Rackets   int             `json:"rackets"`
	Shoes     int             `json:"shoes"`
	Pricing   PricingResponse `json:"pricing"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DailyRevenue выручка за день
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// StatsResponse сводка для администратора по подтверждённым бронированиям
type StatsResponse struct {
	ConfirmedRevenue float64        `json:"confirmedRevenue"`
	ConfirmedCount   int            `json:"confirmedCount"`
	AverageValue     float64        `json:"averageValue"`
	RevenueByDay     []DailyRevenue `json:"revenueByDay"`
}

// Методы конвертации

// FromDomainPricing конвертирует domain модель в DTO
func FromDomainPricing(p domain.PricingBreakdown) PricingResponse {
	return PricingResponse{
		BasePrice:        p.BasePrice,
		WeekendSurcharge: p.WeekendSurcharge,
		TimeMultiplier:   p.TimeMultiplier,
		EquipmentFee:     p.EquipmentFee,
		CoachFee:         p.CoachFee,
		Total:            p.Total,
		IsPeak:           p.IsPeak,
		IsWeekend:        p.IsWeekend,
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		UserID:    b.UserID,
		StartTime: b.Start,
		EndTime:   b.End,
		Rackets:   b.Rackets,
		Shoes:     b.Shoes,
		Pricing:   FromDomainPricing(b.Price),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.CoachID != nil {
		coachID := *b.CoachID
		resp.CoachID = &coachID
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainDecision конвертирует решение тренера в статус
func ToDomainDecision(decision string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(decision) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusRejected:
		return domain.StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}
