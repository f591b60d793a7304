package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/logger"
	"github.com/itchan-dev/signflow/shared/validation"
)

// to mock service in tests
type DocumentRenderer interface {
	Render(ctx context.Context) (*RenderedDocument, error)
}

type RenderClient interface {
	SubmitRender(ctx context.Context, templateId domain.TemplateId, data api.RenderRequest) (*api.RenderResult, error)
	FetchRender(ctx context.Context, renderId domain.RenderId) ([]byte, error)
}

type RenderedDocument struct {
	PDF        []byte
	Signatures []domain.SignaturePosition
	RenderId   domain.RenderId
}

type Renderer struct {
	client     RenderClient
	templateId domain.TemplateId
	data       *domain.ContractData
}

func NewRenderer(client RenderClient, templateId domain.TemplateId, data *domain.ContractData) DocumentRenderer {
	return &Renderer{client, templateId, data}
}

// Render submits the contract data, downloads the finished PDF and returns it
// with the signature positions found in the render response. Every failure
// comes back as *RenderError.
func (r *Renderer) Render(ctx context.Context) (*RenderedDocument, error) {
	result, err := r.client.SubmitRender(ctx, r.templateId, api.RenderRequest{
		Data:      r.data,
		ConvertTo: api.ConvertToPDF,
	})
	if err != nil {
		return nil, &internal_errors.RenderError{Err: err}
	}

	renderId := result.Response.Data.RenderId
	if !result.Response.Success || renderId == "" {
		return nil, &internal_errors.RenderError{
			Err: fmt.Errorf("%w: missing renderId (success=%t)", internal_errors.ErrUnexpectedResponse, result.Response.Success),
		}
	}
	logger.Log.Debug("render submitted", "render_id", renderId)

	pdf, err := r.client.FetchRender(ctx, renderId)
	if err != nil {
		return nil, &internal_errors.RenderError{Err: err}
	}

	signatures := ExtractSignaturePositions(result.Body)

	if err := validation.ValidatePDF(pdf); err != nil {
		return nil, &internal_errors.RenderError{Err: err}
	}

	logger.Log.Info("pdf generated", "bytes", len(pdf), "render_id", renderId)
	return &RenderedDocument{PDF: pdf, Signatures: signatures, RenderId: renderId}, nil
}
