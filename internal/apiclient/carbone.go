package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
)

const (
	CarboneService = "carbone"
	carboneVersion = "5"
)

type CarboneClient struct {
	baseClient
	apiKey string
}

func NewCarbone(baseURL, apiKey string) *CarboneClient {
	return &CarboneClient{
		baseClient: newBaseClient(CarboneService, baseURL),
		apiKey:     apiKey,
	}
}

// SubmitRender asks the rendering service to render templateId with data.
func (c *CarboneClient) SubmitRender(ctx context.Context, templateId domain.TemplateId, data api.RenderRequest) (*api.RenderResult, error) {
	const op = "submit_render"

	jsonBody, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render data: %w", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)
	header.Set("carbone-version", carboneVersion)
	header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, op, http.MethodPost, "/render/"+url.PathEscape(templateId), bytes.NewReader(jsonBody), header)
	if err != nil {
		return nil, err
	}
	body, err := c.readBody(op, resp)
	if err != nil {
		return nil, err
	}

	var result api.RenderResult
	if err := json.Unmarshal(body, &result.Body); err != nil {
		return nil, fmt.Errorf("%w: render response is not a JSON object: %v", internal_errors.ErrUnexpectedResponse, err)
	}
	if err := json.Unmarshal(body, &result.Response); err != nil {
		return nil, fmt.Errorf("%w: %v", internal_errors.ErrUnexpectedResponse, err)
	}
	return &result, nil
}

// FetchRender downloads a finished render. The render id is the only
// credential this endpoint needs.
func (c *CarboneClient) FetchRender(ctx context.Context, renderId domain.RenderId) ([]byte, error) {
	const op = "fetch_render"

	header := http.Header{}
	header.Set("carbone-version", carboneVersion)

	resp, err := c.do(ctx, op, http.MethodGet, "/render/"+url.PathEscape(renderId), nil, header)
	if err != nil {
		return nil, err
	}
	return c.readBody(op, resp)
}
