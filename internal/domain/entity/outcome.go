package entity

// OutcomeKind tags an OperationOutcome.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

// OperationOutcome reports the end state of one orchestrated operation.
type OperationOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	// AssetID is set when a generated image was persisted.
	AssetID string `json:"asset_id,omitempty"`
	// Content is set when a symbol was decoded.
	Content string `json:"content,omitempty"`
}

// Success builds a successful outcome.
func Success(message string) OperationOutcome {
	return OperationOutcome{Kind: OutcomeSuccess, Message: message}
}

// Failure builds a failed outcome.
func Failure(reason string) OperationOutcome {
	return OperationOutcome{Kind: OutcomeFailure, Message: reason}
}

// IsSuccess reports whether the operation succeeded.
func (o OperationOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
