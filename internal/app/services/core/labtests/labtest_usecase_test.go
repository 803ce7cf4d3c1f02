package labtests

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/models"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockLabTestClient struct {
	mock.Mock
}

func (m *MockLabTestClient) FindAll(ctx context.Context) ([]hms_dto.LabTest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hms_dto.LabTest), args.Error(1)
}

func (m *MockLabTestClient) Create(ctx context.Context, draft map[string]interface{}) (*hms_dto.LabTest, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hms_dto.LabTest), args.Error(1)
}

func (m *MockLabTestClient) Update(ctx context.Context, recordID string, draft map[string]interface{}) (*hms_dto.LabTest, error) {
	args := m.Called(ctx, recordID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hms_dto.LabTest), args.Error(1)
}

func (m *MockLabTestClient) Delete(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

type fakeCache struct {
	invalidated []string
}

func (c *fakeCache) GetList(ctx context.Context, resource string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *fakeCache) SetList(ctx context.Context, resource string, payload []byte) error {
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, resource string) error {
	c.invalidated = append(c.invalidated, resource)
	return nil
}

type fakeNotifier struct {
	published []responses.Notification
}

func (n *fakeNotifier) Publish(ctx context.Context, notification responses.Notification) error {
	n.published = append(n.published, notification)
	return nil
}

type fakeAudit struct {
	entries []models.AuditEntry
}

func (a *fakeAudit) Insert(ctx context.Context, entry models.AuditEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func newTestLabTestUsecase(client *MockLabTestClient, cache *fakeCache, notifier *fakeNotifier, audit *fakeAudit) LabTestUsecase {
	internalConfig := &config.InternalConfig{
		Storage: config.Storage{ReportBucketName: "lab-reports", ReportMaxUploadSizeInMB: 5},
	}
	return NewLabTestUsecase(client, cache, notifier, audit, nil, internalConfig, zap.NewNop())
}

func TestLabTestUsecase_Actions(t *testing.T) {
	client := new(MockLabTestClient)
	client.On("FindAll", mock.Anything).Return([]hms_dto.LabTest{
		{ID: "lt-1", Status: constvars.LabTestStatusPending, Billed: false},
		{ID: "lt-2", Status: constvars.LabTestStatusProcessing, Billed: true},
	}, nil)

	usecase := newTestLabTestUsecase(client, &fakeCache{}, &fakeNotifier{}, &fakeAudit{})

	response, err := usecase.Actions(context.Background(), "lt-2")
	require.NoError(t, err)
	assert.Equal(t, "lt-2", response.LabTest.ID)
	assert.Equal(t, []string{string(ActionComplete)}, response.AvailableActions)
}

func TestLabTestUsecase_Actions_NotFound(t *testing.T) {
	client := new(MockLabTestClient)
	client.On("FindAll", mock.Anything).Return([]hms_dto.LabTest{}, nil)

	usecase := newTestLabTestUsecase(client, &fakeCache{}, &fakeNotifier{}, &fakeAudit{})

	_, err := usecase.Actions(context.Background(), "lt-404")
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestLabTestUsecase_Transition_AllowedAction(t *testing.T) {
	client := new(MockLabTestClient)
	client.On("FindAll", mock.Anything).Return([]hms_dto.LabTest{
		{ID: "lt-1", Status: constvars.LabTestStatusPending, Billed: true},
	}, nil)
	client.On("Update", mock.Anything, "lt-1", map[string]interface{}{
		"status": constvars.LabTestStatusSampleCollected,
		"billed": true,
	}).Return(&hms_dto.LabTest{ID: "lt-1", Status: constvars.LabTestStatusSampleCollected, Billed: true}, nil)

	cache := &fakeCache{}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	usecase := newTestLabTestUsecase(client, cache, notifier, audit)

	response, notification, err := usecase.Transition(context.Background(), "lt-1", &requests.LabTestTransitionRequest{
		Action: string(ActionCollectSample),
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.LabTestStatusSampleCollected, response.LabTest.Status)
	assert.Equal(t, []string{string(ActionStartProcessing)}, response.AvailableActions)

	require.NotNil(t, notification)
	assert.Equal(t, "lab test moved to Sample Collected", notification.Message)

	assert.Equal(t, []string{constvars.ResourceLabTest}, cache.invalidated)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionTransition, audit.entries[0].Action)
	client.AssertExpectations(t)
}

func TestLabTestUsecase_Transition_GuardRejectsWithoutBackendCall(t *testing.T) {
	client := new(MockLabTestClient)
	client.On("FindAll", mock.Anything).Return([]hms_dto.LabTest{
		{ID: "lt-1", Status: constvars.LabTestStatusPending, Billed: false},
	}, nil)

	usecase := newTestLabTestUsecase(client, &fakeCache{}, &fakeNotifier{}, &fakeAudit{})

	_, _, err := usecase.Transition(context.Background(), "lt-1", &requests.LabTestTransitionRequest{
		Action: string(ActionComplete),
	})
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	client.AssertNotCalled(t, "Update")
}

func TestLabTestUsecase_Transition_InvalidActionName(t *testing.T) {
	client := new(MockLabTestClient)
	usecase := newTestLabTestUsecase(client, &fakeCache{}, &fakeNotifier{}, &fakeAudit{})

	_, _, err := usecase.Transition(context.Background(), "lt-1", &requests.LabTestTransitionRequest{
		Action: "archive",
	})
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	client.AssertNotCalled(t, "FindAll")
}
