package labtests

import (
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
)

// Action is a named workflow step. The guard table below replaces the old
// button-visibility gating: an action whose precondition does not hold is
// rejected here, before any call reaches the backend, because the backend is
// not known to enforce ordering itself.
type Action string

const (
	ActionMarkBilled      Action = "mark-billed"
	ActionCollectSample   Action = "collect-sample"
	ActionStartProcessing Action = "start-processing"
	ActionComplete        Action = "complete"
)

type state struct {
	Status string
	Billed bool
}

type transition struct {
	From state
	To   state
}

var transitions = map[Action]transition{
	ActionMarkBilled: {
		From: state{Status: constvars.LabTestStatusPending, Billed: false},
		To:   state{Status: constvars.LabTestStatusPending, Billed: true},
	},
	ActionCollectSample: {
		From: state{Status: constvars.LabTestStatusPending, Billed: true},
		To:   state{Status: constvars.LabTestStatusSampleCollected, Billed: true},
	},
	ActionStartProcessing: {
		From: state{Status: constvars.LabTestStatusSampleCollected, Billed: true},
		To:   state{Status: constvars.LabTestStatusProcessing, Billed: true},
	},
	ActionComplete: {
		From: state{Status: constvars.LabTestStatusProcessing, Billed: true},
		To:   state{Status: constvars.LabTestStatusCompleted, Billed: true},
	},
}

// actionOrder keeps AvailableActions deterministic.
var actionOrder = []Action{ActionMarkBilled, ActionCollectSample, ActionStartProcessing, ActionComplete}

// NextState returns the state the lab test moves to when the action fires, or
// a conflict error when the guard fails.
func NextState(labTest hms_dto.LabTest, action Action) (state, error) {
	t, ok := transitions[action]
	if !ok {
		return state{}, exceptions.ErrUnknownWorkflowAction(string(action))
	}
	if labTest.Status != t.From.Status || labTest.Billed != t.From.Billed {
		return state{}, exceptions.ErrWorkflowActionNotAllowed(string(action), labTest.Status, labTest.Billed)
	}
	return t.To, nil
}

// AvailableActions lists the actions whose guard currently holds; a completed
// test has none.
func AvailableActions(labTest hms_dto.LabTest) []string {
	var actions []string
	for _, action := range actionOrder {
		t := transitions[action]
		if labTest.Status == t.From.Status && labTest.Billed == t.From.Billed {
			actions = append(actions, string(action))
		}
	}
	return actions
}
