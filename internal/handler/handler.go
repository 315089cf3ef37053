package handler

import (
	"aidbridge/internal/domain"
	"aidbridge/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Donation     *ItemHandler
	Request      *ItemHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Export       *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Donation:     NewItemHandler(domain.KindDonation, services.Lifecycle, services.Query),
		Request:      NewItemHandler(domain.KindRequest, services.Lifecycle, services.Query),
		Notification: NewNotificationHandler(services.Query),
		Report:       NewReportHandler(services.Demand),
		Export:       NewExportHandler(services.Export),
	}
}
