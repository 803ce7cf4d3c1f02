package listview

import (
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/hms_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRooms() []hms_dto.Room {
	return []hms_dto.Room{
		{ID: "r-1", RoomNumber: "101", Ward: "East Wing", Type: "General", Status: constvars.RoomStatusAvailable},
		{ID: "r-2", RoomNumber: "102", Ward: "East Wing", Type: "ICU", Status: constvars.RoomStatusOccupied},
		{ID: "r-3", RoomNumber: "201", Ward: "West Wing", Type: "General", Status: constvars.RoomStatusAvailable},
		{ID: "r-4", RoomNumber: "202", Ward: "West Wing", Type: "Private", Status: constvars.RoomStatusMaintenance},
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	query := requests.ListQuery{Search: "east WING"}

	result := Apply(sampleRooms(), query, []string{"room_number", "ward", "type"})

	require.Len(t, result, 2)
	assert.Equal(t, "r-1", result[0].ID)
	assert.Equal(t, "r-2", result[1].ID)
}

func TestApply_SearchMatchesAnySearchField(t *testing.T) {
	query := requests.ListQuery{Search: "icu"}

	result := Apply(sampleRooms(), query, []string{"room_number", "ward", "type"})

	require.Len(t, result, 1)
	assert.Equal(t, "r-2", result[0].ID)
}

func TestApply_FiltersAreConjunctive(t *testing.T) {
	query := requests.ListQuery{Filters: map[string]string{
		"type":   "General",
		"status": constvars.RoomStatusAvailable,
	}}

	result := Apply(sampleRooms(), query, nil)

	require.Len(t, result, 2)
	for _, room := range result {
		assert.Equal(t, "General", room.Type)
		assert.Equal(t, constvars.RoomStatusAvailable, room.Status)
	}
}

func TestApply_SearchAndFilterCombine(t *testing.T) {
	query := requests.ListQuery{
		Search:  "west",
		Filters: map[string]string{"type": "General"},
	}

	result := Apply(sampleRooms(), query, []string{"ward"})

	require.Len(t, result, 1)
	assert.Equal(t, "r-3", result[0].ID)
}

func TestApply_SortAscendingAndDescending(t *testing.T) {
	ascending := Apply(sampleRooms(), requests.ListQuery{SortField: "room_number", SortOrder: constvars.SortOrderAscending}, nil)
	descending := Apply(sampleRooms(), requests.ListQuery{SortField: "room_number", SortOrder: constvars.SortOrderDescending}, nil)

	require.Len(t, ascending, 4)
	assert.Equal(t, "101", ascending[0].RoomNumber)
	assert.Equal(t, "202", ascending[3].RoomNumber)

	require.Len(t, descending, 4)
	assert.Equal(t, "202", descending[0].RoomNumber)
	assert.Equal(t, "101", descending[3].RoomNumber)
}

func TestApply_SortIsNumericWhenBothSidesParse(t *testing.T) {
	medicines := []hms_dto.Medicine{
		{ID: "m-1", Name: "Paracetamol", Stock: 9},
		{ID: "m-2", Name: "Amoxicillin", Stock: 120},
		{ID: "m-3", Name: "Ibuprofen", Stock: 30},
	}

	result := Apply(medicines, requests.ListQuery{SortField: "stock", SortOrder: constvars.SortOrderAscending}, nil)

	require.Len(t, result, 3)
	assert.Equal(t, 9, result[0].Stock)
	assert.Equal(t, 30, result[1].Stock)
	assert.Equal(t, 120, result[2].Stock)
}

func TestApply_SortIsStableForEqualKeys(t *testing.T) {
	rooms := []hms_dto.Room{
		{ID: "r-1", RoomNumber: "101", Type: "General"},
		{ID: "r-2", RoomNumber: "102", Type: "General"},
		{ID: "r-3", RoomNumber: "103", Type: "General"},
	}

	result := Apply(rooms, requests.ListQuery{SortField: "type", SortOrder: constvars.SortOrderAscending}, nil)

	require.Len(t, result, 3)
	assert.Equal(t, "r-1", result[0].ID)
	assert.Equal(t, "r-2", result[1].ID)
	assert.Equal(t, "r-3", result[2].ID)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rooms := sampleRooms()

	Apply(rooms, requests.ListQuery{SortField: "room_number", SortOrder: constvars.SortOrderDescending}, nil)

	assert.Equal(t, "r-1", rooms[0].ID, "source slice order should survive sorting")
}

func TestFieldValue_ResolvesByJSONTag(t *testing.T) {
	room := hms_dto.Room{RoomNumber: "101", Status: constvars.RoomStatusAvailable}

	value, ok := FieldValue(room, "room_number")
	require.True(t, ok)
	assert.Equal(t, "101", value)

	_, ok = FieldValue(room, "no_such_field")
	assert.False(t, ok)
}
