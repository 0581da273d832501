package dto

type SetModeRequest struct {
	IsPriorityMode *bool `json:"is_priority_mode"`
	IsOpenForAll   *bool `json:"is_open_for_all"`
}

type StartTimerRequest struct {
	DurationSeconds int `json:"duration_seconds"`
}
