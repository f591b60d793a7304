package service

import (
	"context"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/itchan-dev/signflow/shared/logger"
)

type EnvelopeCreator interface {
	Create(ctx context.Context, pdf []byte) (domain.EnvelopeRef, error)
}

type DocumentUploader interface {
	UploadDocument(ctx context.Context, workspaceUUID domain.WorkspaceUUID, file []byte, envelopeTitle string) (*api.UploadDocumentResponse, error)
}

type EnvelopeBuilder struct {
	client        DocumentUploader
	workspaceUUID domain.WorkspaceUUID
	title         string
}

func NewEnvelopeBuilder(client DocumentUploader, workspaceUUID domain.WorkspaceUUID, title string) EnvelopeCreator {
	return &EnvelopeBuilder{client, workspaceUUID, title}
}

// Create uploads pdf as a new envelope. Upload errors are returned as is.
func (b *EnvelopeBuilder) Create(ctx context.Context, pdf []byte) (domain.EnvelopeRef, error) {
	resp, err := b.client.UploadDocument(ctx, b.workspaceUUID, pdf, b.title)
	if err != nil {
		return domain.EnvelopeRef{}, err
	}

	logger.Log.Info("envelope created", "envelope_uuid", resp.EnvelopeUUID, "document_uuid", resp.DocumentUUID)
	return domain.EnvelopeRef{EnvelopeUUID: resp.EnvelopeUUID, DocumentUUID: resp.DocumentUUID}, nil
}
