package telegram

// State is the per-user conversation step. A user has at most one active
// state, entering a new flow overwrites the previous one.
type State string

const (
	StateIdle                State = "IDLE"
	StateAwaitingMedia       State = "AWAITING_MEDIA"
	StateAwaitingDescription State = "AWAITING_DESCRIPTION"
	StateAwaitingGetID       State = "AWAITING_GET_ID"
	StateAwaitingDeleteID    State = "AWAITING_DELETE_ID"
	StateAwaitingEditID      State = "AWAITING_EDIT_ID"
	StateAwaitingEditText    State = "AWAITING_EDIT_TEXT"
	StateAwaitingSearchText  State = "AWAITING_SEARCH_TEXT"
	StateAwaitingFilterArgs  State = "AWAITING_FILTER_ARGS"
)
