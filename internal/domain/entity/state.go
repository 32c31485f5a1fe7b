package entity

// State is a snapshot of the observable fields of the QR code view-model.
type State struct {
	Generated      bool    `json:"generated"`
	ErrorMessage   *string `json:"error_message"`
	SuccessMessage *string `json:"success_message"`
	DecodedContent *string `json:"decoded_content"`
	Scanning       bool    `json:"scanning"`
	// Revision increases on every change.
	Revision uint64 `json:"revision"`
}

// Clone returns a copy that shares no pointers with s.
func (s State) Clone() State {
	out := s
	out.ErrorMessage = cloneString(s.ErrorMessage)
	out.SuccessMessage = cloneString(s.SuccessMessage)
	out.DecodedContent = cloneString(s.DecodedContent)

	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
