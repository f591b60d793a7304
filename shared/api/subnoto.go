package api

import (
	"bytes"
	"encoding/json"

	"github.com/itchan-dev/signflow/shared/domain"
)

// Wire types of the e-signature platform

type UploadDocumentResponse struct {
	EnvelopeUUID domain.EnvelopeUUID `json:"envelopeUuid" validate:"required,uuid"`
	DocumentUUID domain.DocumentUUID `json:"documentUuid" validate:"required,uuid"`
}

type AddRecipientsRequest struct {
	WorkspaceUUID domain.WorkspaceUUID `json:"workspaceUuid"`
	EnvelopeUUID  domain.EnvelopeUUID  `json:"envelopeUuid"`
	Recipients    []domain.Recipient   `json:"recipients"`
}

type AddBlocksRequest struct {
	WorkspaceUUID domain.WorkspaceUUID `json:"workspaceUuid"`
	EnvelopeUUID  domain.EnvelopeUUID  `json:"envelopeUuid"`
	DocumentUUID  domain.DocumentUUID  `json:"documentUuid"`
	Blocks        []domain.Block       `json:"blocks"`
}

type SendEnvelopeRequest struct {
	WorkspaceUUID domain.WorkspaceUUID `json:"workspaceUuid"`
	EnvelopeUUID  domain.EnvelopeUUID  `json:"envelopeUuid"`
}

// ErrorResponse is the common reply of the envelope endpoints. Any non-null
// error member means the call failed, whatever its shape.
type ErrorResponse struct {
	Error json.RawMessage `json:"error,omitempty"`
}

func (r ErrorResponse) HasError() bool {
	trimmed := bytes.TrimSpace(r.Error)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
