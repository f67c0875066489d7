package model

// BatchStatus enumerates the states a batch moves through on its way from
// creation to automated filling.
type BatchStatus string

const (
	// StatusPending means the batch has been created but not yet prepared.
	StatusPending BatchStatus = "PENDING"
	// StatusCanisterTransferRecommended means canister moves have been suggested.
	StatusCanisterTransferRecommended BatchStatus = "CANISTER_TRANSFER_RECOMMENDED"
	// StatusCanisterTransferDone means canister preparation is finished.
	StatusCanisterTransferDone BatchStatus = "CANISTER_TRANSFER_DONE"
	// StatusImported means the batch has been imported into the filling equipment.
	StatusImported BatchStatus = "IMPORTED"
	// StatusProcessingComplete means the filling run has finished.
	StatusProcessingComplete BatchStatus = "PROCESSING_COMPLETE"
)

// Valid reports whether s is one of the known batch statuses.
func (s BatchStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCanisterTransferRecommended,
		StatusCanisterTransferDone, StatusImported, StatusProcessingComplete:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s BatchStatus) String() string {
	return string(s)
}

// PreImport reports whether s is one of the states a batch passes through
// before it is imported into the filling equipment.
func (s BatchStatus) PreImport() bool {
	switch s {
	case StatusPending, StatusCanisterTransferRecommended, StatusCanisterTransferDone:
		return true
	}
	return false
}

// CanTransitionTo reports whether a plain status update from s to target is
// permitted. An imported batch must not be reverted to a pre-import state;
// only an explicit reset (or a CRM caller, which bypasses the guard entirely)
// may take it back.
func (s BatchStatus) CanTransitionTo(target BatchStatus) bool {
	if s == StatusImported && target.PreImport() {
		return false
	}
	return true
}
