package requests

type LabTestTransitionRequest struct {
	Action string `json:"action" validate:"required,oneof=mark-billed collect-sample start-processing complete"`
}
