package labtests

import (
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextState_HappyPath(t *testing.T) {
	labTest := hms_dto.LabTest{ID: "lt-1", Status: constvars.LabTestStatusPending, Billed: false}

	steps := []struct {
		action     Action
		wantStatus string
		wantBilled bool
	}{
		{ActionMarkBilled, constvars.LabTestStatusPending, true},
		{ActionCollectSample, constvars.LabTestStatusSampleCollected, true},
		{ActionStartProcessing, constvars.LabTestStatusProcessing, true},
		{ActionComplete, constvars.LabTestStatusCompleted, true},
	}

	for _, step := range steps {
		next, err := NextState(labTest, step.action)
		require.NoError(t, err, "action %s should be allowed from %s (billed=%v)", step.action, labTest.Status, labTest.Billed)
		assert.Equal(t, step.wantStatus, next.Status)
		assert.Equal(t, step.wantBilled, next.Billed)

		labTest.Status = next.Status
		labTest.Billed = next.Billed
	}
}

func TestNextState_OutOfOrderActionsRejected(t *testing.T) {
	testCases := []struct {
		name    string
		labTest hms_dto.LabTest
		action  Action
	}{
		{
			name:    "collect sample before billing",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: false},
			action:  ActionCollectSample,
		},
		{
			name:    "complete straight from pending",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: true},
			action:  ActionComplete,
		},
		{
			name:    "mark billed twice",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: true},
			action:  ActionMarkBilled,
		},
		{
			name:    "start processing before sample collection",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: true},
			action:  ActionStartProcessing,
		},
		{
			name:    "any action on a completed test",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusCompleted, Billed: true},
			action:  ActionComplete,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NextState(tc.labTest, tc.action)
			require.Error(t, err)

			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		})
	}
}

func TestNextState_UnknownAction(t *testing.T) {
	labTest := hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: false}

	_, err := NextState(labTest, Action("archive"))
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAvailableActions(t *testing.T) {
	testCases := []struct {
		name    string
		labTest hms_dto.LabTest
		want    []string
	}{
		{
			name:    "unbilled pending test can only be billed",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: false},
			want:    []string{string(ActionMarkBilled)},
		},
		{
			name:    "billed pending test moves to sample collection",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusPending, Billed: true},
			want:    []string{string(ActionCollectSample)},
		},
		{
			name:    "collected sample moves to processing",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusSampleCollected, Billed: true},
			want:    []string{string(ActionStartProcessing)},
		},
		{
			name:    "processing test can complete",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusProcessing, Billed: true},
			want:    []string{string(ActionComplete)},
		},
		{
			name:    "completed test has no actions",
			labTest: hms_dto.LabTest{Status: constvars.LabTestStatusCompleted, Billed: true},
			want:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AvailableActions(tc.labTest))
		})
	}
}
