package resources

import (
	"context"
	"errors"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/models"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/dto/responses"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRoomClient struct {
	mock.Mock
}

func (m *MockRoomClient) FindAll(ctx context.Context) ([]hms_dto.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hms_dto.Room), args.Error(1)
}

func (m *MockRoomClient) Create(ctx context.Context, draft map[string]interface{}) (*hms_dto.Room, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hms_dto.Room), args.Error(1)
}

func (m *MockRoomClient) Update(ctx context.Context, recordID string, draft map[string]interface{}) (*hms_dto.Room, error) {
	args := m.Called(ctx, recordID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hms_dto.Room), args.Error(1)
}

func (m *MockRoomClient) Delete(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// fakeCache is an in-memory stand-in for the Redis-backed resource cache.
type fakeCache struct {
	lists       map[string][]byte
	readErr     error
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{lists: map[string][]byte{}}
}

func (c *fakeCache) GetList(ctx context.Context, resource string) ([]byte, bool, error) {
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	payload, ok := c.lists[resource]
	return payload, ok, nil
}

func (c *fakeCache) SetList(ctx context.Context, resource string, payload []byte) error {
	c.lists[resource] = payload
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, resource string) error {
	delete(c.lists, resource)
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

func testDescriptor() Descriptor {
	internalConfig := &config.InternalConfig{Backend: config.Backend{APIPrefix: "/api"}}
	return RoomDescriptor(internalConfig)
}

func newRoomUsecase(client Client[hms_dto.Room], cache *fakeCache, notifier *fakeNotifier, audit *fakeAudit) Usecase[hms_dto.Room] {
	return NewResourceUsecase(client, cache, notifier, audit, testDescriptor(), zap.NewNop())
}

func validRoomDraft() map[string]interface{} {
	return map[string]interface{}{
		"room_number": "101",
		"type":        "General",
		"status":      constvars.RoomStatusAvailable,
	}
}

func TestResourceUsecase_List_FetchesAndCaches(t *testing.T) {
	client := new(MockRoomClient)
	client.On("FindAll", mock.Anything).
		Return([]hms_dto.Room{{ID: "r-1", RoomNumber: "101"}}, nil).Once()

	cache := newFakeCache()
	usecase := newRoomUsecase(client, cache, &fakeNotifier{}, &fakeAudit{})

	list, err := usecase.List(context.Background(), requests.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Empty(t, list.EmptyMessage)
	assert.Contains(t, cache.lists, constvars.ResourceRoom)

	// Second read is served from cache; the mock only allows one FindAll.
	list, err = usecase.List(context.Background(), requests.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	client.AssertExpectations(t)
}

func TestResourceUsecase_List_CacheFailureFallsBackToBackend(t *testing.T) {
	client := new(MockRoomClient)
	client.On("FindAll", mock.Anything).
		Return([]hms_dto.Room{{ID: "r-1", RoomNumber: "101"}}, nil)

	cache := newFakeCache()
	cache.readErr = errors.New("redis connection refused")
	usecase := newRoomUsecase(client, cache, &fakeNotifier{}, &fakeAudit{})

	list, err := usecase.List(context.Background(), requests.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestResourceUsecase_List_EmptyMessage(t *testing.T) {
	client := new(MockRoomClient)
	client.On("FindAll", mock.Anything).
		Return([]hms_dto.Room{{ID: "r-1", RoomNumber: "101", Ward: "East Wing"}}, nil)

	usecase := newRoomUsecase(client, newFakeCache(), &fakeNotifier{}, &fakeAudit{})

	list, err := usecase.List(context.Background(), requests.ListQuery{Search: "no such room"})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.Equal(t, constvars.EmptyListMessage, list.EmptyMessage)
}

func TestResourceUsecase_List_IgnoresUnknownFilters(t *testing.T) {
	client := new(MockRoomClient)
	client.On("FindAll", mock.Anything).
		Return([]hms_dto.Room{{ID: "r-1", RoomNumber: "101", Status: constvars.RoomStatusAvailable}}, nil)

	usecase := newRoomUsecase(client, newFakeCache(), &fakeNotifier{}, &fakeAudit{})

	list, err := usecase.List(context.Background(), requests.ListQuery{
		Filters: map[string]string{"assigned_patient_id": "p-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total, "filters outside the descriptor's filter fields are dropped")
}

func TestResourceUsecase_Create_ValidationBlocksBackendCall(t *testing.T) {
	client := new(MockRoomClient)
	usecase := newRoomUsecase(client, newFakeCache(), &fakeNotifier{}, &fakeAudit{})

	_, _, err := usecase.Create(context.Background(), map[string]interface{}{
		"type":   "General",
		"status": constvars.RoomStatusAvailable,
	})
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Room Number is required", customErr.ClientMessage)
	client.AssertNotCalled(t, "Create")
}

func TestResourceUsecase_Create_InvalidatesCacheAndNotifies(t *testing.T) {
	client := new(MockRoomClient)
	client.On("Create", mock.Anything, mock.Anything).
		Return(&hms_dto.Room{ID: "r-9", RoomNumber: "101"}, nil)

	cache := newFakeCache()
	cache.lists[constvars.ResourceRoom] = []byte(`[]`)
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	usecase := newRoomUsecase(client, cache, notifier, audit)

	record, notification, err := usecase.Create(context.Background(), validRoomDraft())
	require.NoError(t, err)
	assert.Equal(t, "r-9", record.ID)

	require.NotNil(t, notification)
	assert.Equal(t, constvars.NotificationLevelSuccess, notification.Level)
	assert.Equal(t, "room created successfully", notification.Message)
	require.Len(t, notifier.published, 1)

	assert.NotContains(t, cache.lists, constvars.ResourceRoom)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionCreate, audit.entries[0].Action)
	assert.Equal(t, "r-9", audit.entries[0].RecordID)
}

func TestResourceUsecase_Create_BackendFailurePublishesErrorNotification(t *testing.T) {
	client := new(MockRoomClient)
	client.On("Create", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrBackendRejected(422, "room number already exists", constvars.ResourceRoom))

	notifier := &fakeNotifier{}
	usecase := newRoomUsecase(client, newFakeCache(), notifier, &fakeAudit{})

	_, notification, err := usecase.Create(context.Background(), validRoomDraft())
	require.Error(t, err)
	assert.Nil(t, notification)

	require.Len(t, notifier.published, 1)
	assert.Equal(t, constvars.NotificationLevelError, notifier.published[0].Level)
	assert.Equal(t, "room number already exists", notifier.published[0].Message)
	assert.Equal(t, constvars.ResourceRoom, notifier.published[0].Resource)
}

func TestResourceUsecase_Delete_UnconfirmedPublishesErrorNotification(t *testing.T) {
	client := new(MockRoomClient)
	notifier := &fakeNotifier{}
	usecase := newRoomUsecase(client, newFakeCache(), notifier, &fakeAudit{})

	_, err := usecase.Delete(context.Background(), "r-1", false)
	require.Error(t, err)

	require.Len(t, notifier.published, 1)
	assert.Equal(t, constvars.NotificationLevelError, notifier.published[0].Level)
	client.AssertNotCalled(t, "Delete")
}

func TestResourceUsecase_Update_IsIdempotent(t *testing.T) {
	client := new(MockRoomClient)
	updated := &hms_dto.Room{ID: "r-1", RoomNumber: "105", Type: "General", Status: constvars.RoomStatusAvailable}
	client.On("Update", mock.Anything, "r-1", mock.Anything).Return(updated, nil)

	usecase := newRoomUsecase(client, newFakeCache(), &fakeNotifier{}, &fakeAudit{})

	draft := validRoomDraft()
	draft["room_number"] = "105"

	first, _, err := usecase.Update(context.Background(), "r-1", draft)
	require.NoError(t, err)
	second, _, err := usecase.Update(context.Background(), "r-1", draft)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResourceUsecase_Delete_RequiresConfirmation(t *testing.T) {
	client := new(MockRoomClient)
	usecase := newRoomUsecase(client, newFakeCache(), &fakeNotifier{}, &fakeAudit{})

	_, err := usecase.Delete(context.Background(), "r-1", false)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	client.AssertNotCalled(t, "Delete")
}

func TestResourceUsecase_Delete_ConfirmedIssuesExactlyOneCall(t *testing.T) {
	client := new(MockRoomClient)
	client.On("Delete", mock.Anything, "r-1").Return(nil).Once()

	cache := newFakeCache()
	cache.lists[constvars.ResourceRoom] = []byte(`[]`)
	usecase := newRoomUsecase(client, cache, &fakeNotifier{}, &fakeAudit{})

	notification, err := usecase.Delete(context.Background(), "r-1", true)
	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, "room deleted successfully", notification.Message)

	assert.NotContains(t, cache.lists, constvars.ResourceRoom)
	client.AssertExpectations(t)
}

func TestResourceUsecase_List_ServedFromSeededCache(t *testing.T) {
	client := new(MockRoomClient)

	cache := newFakeCache()
	payload, err := json.Marshal([]hms_dto.Room{{ID: "r-1", RoomNumber: "101"}})
	require.NoError(t, err)
	cache.lists[constvars.ResourceRoom] = payload

	usecase := newRoomUsecase(client, cache, &fakeNotifier{}, &fakeAudit{})

	list, err := usecase.List(context.Background(), requests.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	client.AssertNotCalled(t, "FindAll")
}
