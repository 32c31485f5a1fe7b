// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// QRCodeUsecase is the observable QR code view-model. Operations report
// their result through State; at most one submission is in flight and a new
// one supersedes it.
type QRCodeUsecase interface {
	// SubmitGenerate encodes text with the brand logo and saves it to the photo library
	SubmitGenerate(ctx context.Context, text string) *Submission

	// SubmitDecode reads a QR code from encoded picture bytes
	SubmitDecode(ctx context.Context, data []byte) *Submission

	// SelectImage handles a picker result; nil or empty data means no picture was obtained
	SelectImage(ctx context.Context, data []byte) *Submission

	// StartScan opens the capture source; the first detected symbol ends the session
	StartScan(ctx context.Context) error

	// StopScan ends a running scan session
	StopScan()

	// Preview renders a QR code without touching state or the photo library
	Preview(text string, withLogo bool) (*entity.QRImage, error)

	// State returns the latest snapshot
	State() entity.State

	// Subscribe registers fn for every state change. fn runs on the
	// dispatcher and first receives the current state.
	Subscribe(fn func(entity.State)) (unsubscribe func())
}
