package service

import (
	"context"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
)

// MockRenderClient mocks the RenderClient interface.
type MockRenderClient struct {
	submitRenderFunc func(ctx context.Context, templateId domain.TemplateId, data api.RenderRequest) (*api.RenderResult, error)
	fetchRenderFunc  func(ctx context.Context, renderId domain.RenderId) ([]byte, error)
}

func (m *MockRenderClient) SubmitRender(ctx context.Context, templateId domain.TemplateId, data api.RenderRequest) (*api.RenderResult, error) {
	if m.submitRenderFunc != nil {
		return m.submitRenderFunc(ctx, templateId, data)
	}
	return &api.RenderResult{}, nil
}

func (m *MockRenderClient) FetchRender(ctx context.Context, renderId domain.RenderId) ([]byte, error) {
	if m.fetchRenderFunc != nil {
		return m.fetchRenderFunc(ctx, renderId)
	}
	return nil, nil
}

// MockSubnotoClient mocks DocumentUploader, EnvelopeEditor and EnvelopeSender.
type MockSubnotoClient struct {
	uploadDocumentFunc func(ctx context.Context, workspaceUUID domain.WorkspaceUUID, file []byte, envelopeTitle string) (*api.UploadDocumentResponse, error)
	addRecipientsFunc  func(ctx context.Context, data api.AddRecipientsRequest) error
	addBlocksFunc      func(ctx context.Context, data api.AddBlocksRequest) error
	sendEnvelopeFunc   func(ctx context.Context, data api.SendEnvelopeRequest) error
}

func (m *MockSubnotoClient) UploadDocument(ctx context.Context, workspaceUUID domain.WorkspaceUUID, file []byte, envelopeTitle string) (*api.UploadDocumentResponse, error) {
	if m.uploadDocumentFunc != nil {
		return m.uploadDocumentFunc(ctx, workspaceUUID, file, envelopeTitle)
	}
	return &api.UploadDocumentResponse{}, nil
}

func (m *MockSubnotoClient) AddRecipients(ctx context.Context, data api.AddRecipientsRequest) error {
	if m.addRecipientsFunc != nil {
		return m.addRecipientsFunc(ctx, data)
	}
	return nil
}

func (m *MockSubnotoClient) AddBlocks(ctx context.Context, data api.AddBlocksRequest) error {
	if m.addBlocksFunc != nil {
		return m.addBlocksFunc(ctx, data)
	}
	return nil
}

func (m *MockSubnotoClient) SendEnvelope(ctx context.Context, data api.SendEnvelopeRequest) error {
	if m.sendEnvelopeFunc != nil {
		return m.sendEnvelopeFunc(ctx, data)
	}
	return nil
}
