package api

import "github.com/itchan-dev/signflow/shared/domain"

// Wire types of the rendering service

const ConvertToPDF = "pdf"

type RenderRequest struct {
	Data      *domain.ContractData `json:"data"`
	ConvertTo string               `json:"convertTo"`
}

type RenderResponse struct {
	Success bool               `json:"success"`
	Data    RenderResponseData `json:"data"`
	Error   string             `json:"error,omitempty"`
}

type RenderResponseData struct {
	RenderId domain.RenderId `json:"renderId"`
}

// RenderResult is the decoded answer to a render request. Body keeps the raw
// JSON object so signature metadata can be read from it.
type RenderResult struct {
	Response RenderResponse
	Body     map[string]any
}
