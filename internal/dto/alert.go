package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

// UpdateAlertRequest flips the read flag on an alert.
type UpdateAlertRequest struct {
	Read bool `json:"read"`
}

// AlertResponse defines the data returned for an alert.
type AlertResponse struct {
	AlertID   string    `json:"alertID"`
	ProductID string    `json:"productID"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAlertResponse converts a domain.Alert to AlertResponse.
func ToAlertResponse(a *domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:   a.AlertID,
		ProductID: a.ProductID,
		Type:      string(a.Type),
		Message:   a.Message,
		Read:      a.Read,
		CreatedAt: a.CreatedAt,
	}
}

// ListAlertsResponse wraps a page of alerts with the token for the next page.
type ListAlertsResponse struct {
	Alerts    []AlertResponse `json:"alerts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToListAlertsResponse converts a page of alerts.
func ToListAlertsResponse(alerts []domain.Alert, nextToken *string) ListAlertsResponse {
	res := make([]AlertResponse, len(alerts))
	for i := range alerts {
		res[i] = ToAlertResponse(&alerts[i])
	}
	return ListAlertsResponse{Alerts: res, NextToken: nextToken}
}
