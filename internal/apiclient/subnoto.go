package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/jwt"
	"github.com/itchan-dev/signflow/shared/utils"
)

const (
	SubnotoService = "subnoto"

	uploadDocumentPath = "/public/envelope/create-from-file"
	addRecipientsPath  = "/public/envelope/add-recipients"
	addBlocksPath      = "/public/envelope/add-blocks"
	sendEnvelopePath   = "/public/envelope/send"

	uploadFilename = "document.pdf"
)

type SubnotoClient struct {
	baseClient
	jwt jwt.JwtService
}

func NewSubnoto(baseURL string, jwt jwt.JwtService) *SubnotoClient {
	return &SubnotoClient{
		baseClient: newBaseClient(SubnotoService, baseURL),
		jwt:        jwt,
	}
}

func (c *SubnotoClient) authHeader() (http.Header, error) {
	token, err := c.jwt.NewToken()
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	return header, nil
}

// UploadDocument creates a new envelope holding file as its only document.
func (c *SubnotoClient) UploadDocument(ctx context.Context, workspaceUUID domain.WorkspaceUUID, file []byte, envelopeTitle string) (*api.UploadDocumentResponse, error) {
	const op = "upload_document"

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("workspaceUuid", workspaceUUID); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.WriteField("envelopeTitle", envelopeTitle); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, uploadFilename))
	partHeader.Set("Content-Type", "application/pdf")
	part, err := form.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	header, err := c.authHeader()
	if err != nil {
		return nil, err
	}
	header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.do(ctx, op, http.MethodPost, uploadDocumentPath, &buf, header)
	if err != nil {
		return nil, err
	}
	body, err := c.readBody(op, resp)
	if err != nil {
		return nil, err
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.HasError() {
		return nil, c.platformError(op, errResp)
	}
	var uploaded api.UploadDocumentResponse
	if err := utils.DecodeValidate(bytes.NewReader(body), &uploaded); err != nil {
		return nil, fmt.Errorf("upload response: %w", err)
	}
	return &uploaded, nil
}

func (c *SubnotoClient) AddRecipients(ctx context.Context, data api.AddRecipientsRequest) error {
	return c.postJSON(ctx, "add_recipients", addRecipientsPath, data)
}

func (c *SubnotoClient) AddBlocks(ctx context.Context, data api.AddBlocksRequest) error {
	return c.postJSON(ctx, "add_blocks", addBlocksPath, data)
}

func (c *SubnotoClient) SendEnvelope(ctx context.Context, data api.SendEnvelopeRequest) error {
	return c.postJSON(ctx, "send_envelope", sendEnvelopePath, data)
}

// postJSON sends one envelope command. A 2xx reply still fails when it
// carries an error member.
func (c *SubnotoClient) postJSON(ctx context.Context, op, path string, data any) error {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s data: %w", op, err)
	}

	header, err := c.authHeader()
	if err != nil {
		return err
	}
	header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(jsonBody), header)
	if err != nil {
		return err
	}
	body, err := c.readBody(op, resp)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return fmt.Errorf("%w: %s reply: %v", internal_errors.ErrUnexpectedResponse, op, err)
	}
	if errResp.HasError() {
		return c.platformError(op, errResp)
	}
	return nil
}

func (c *SubnotoClient) platformError(op string, errResp api.ErrorResponse) error {
	return &internal_errors.UpstreamError{
		Service:   c.service,
		Operation: op,
		Detail:    utils.Truncate(errResp.Error, maxErrorDetail),
	}
}
