package dashboard

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/services/core/resources"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/hms_dto"
	"mediboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// dashboardUsecase aggregates counts and totals over the fetched
// collections. Nothing is stored; every summary is recomputed from the
// backend's current data.
type dashboardUsecase struct {
	TransactionClient resources.Client[hms_dto.Transaction]
	RoomClient        resources.Client[hms_dto.Room]
	AppointmentClient resources.Client[hms_dto.Appointment]
	LabTestClient     resources.Client[hms_dto.LabTest]
	MedicineClient    resources.Client[hms_dto.Medicine]
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewDashboardUsecase(
	transactionClient resources.Client[hms_dto.Transaction],
	roomClient resources.Client[hms_dto.Room],
	appointmentClient resources.Client[hms_dto.Appointment],
	labTestClient resources.Client[hms_dto.LabTest],
	medicineClient resources.Client[hms_dto.Medicine],
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DashboardUsecase {
	return &dashboardUsecase{
		TransactionClient: transactionClient,
		RoomClient:        roomClient,
		AppointmentClient: appointmentClient,
		LabTestClient:     labTestClient,
		MedicineClient:    medicineClient,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *dashboardUsecase) Summary(ctx context.Context) (*responses.DashboardSummary, error) {
	transactions, err := uc.TransactionClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := uc.RoomClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.AppointmentClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	labTests, err := uc.LabTestClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	medicines, err := uc.MedicineClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &responses.DashboardSummary{
		RoomsByStatus:       map[string]int{},
		AppointmentsByState: map[string]int{},
		LabTestsByStatus:    map[string]int{},
	}

	for _, transaction := range transactions {
		switch transaction.Type {
		case constvars.TransactionTypeIncome:
			summary.TotalIncome += transaction.Amount
		case constvars.TransactionTypeExpense:
			summary.TotalExpense += transaction.Amount
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense

	for _, room := range rooms {
		summary.RoomsByStatus[room.Status]++
	}
	for _, appointment := range appointments {
		summary.AppointmentsByState[appointment.Status]++
	}
	for _, labTest := range labTests {
		summary.LabTestsByStatus[labTest.Status]++
	}
	for _, medicine := range medicines {
		if medicine.Stock < uc.InternalConfig.Storage.LowStockThreshold {
			summary.LowStockMedicines++
		}
	}

	uc.Log.Info("dashboardUsecase.Summary computed",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingRecordCountKey, len(transactions)),
	)
	return summary, nil
}
