package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/itchan-dev/signflow/shared/logger"
)

const fallbackFirstname = "User"

type RecipientRegistrar interface {
	Register(ctx context.Context, ref domain.EnvelopeRef, signatures []domain.SignaturePosition) error
}

type EnvelopeEditor interface {
	AddRecipients(ctx context.Context, data api.AddRecipientsRequest) error
	AddBlocks(ctx context.Context, data api.AddBlocksRequest) error
}

type Registrar struct {
	client        EnvelopeEditor
	workspaceUUID domain.WorkspaceUUID
}

func NewRegistrar(client EnvelopeEditor, workspaceUUID domain.WorkspaceUUID) RecipientRegistrar {
	return &Registrar{client, workspaceUUID}
}

// Register adds one recipient per distinct email and one block per signature
// marker. A failed recipient call stops before any block is sent.
func (r *Registrar) Register(ctx context.Context, ref domain.EnvelopeRef, signatures []domain.SignaturePosition) error {
	recipients := BuildRecipients(signatures)
	if len(recipients) > 0 {
		err := r.client.AddRecipients(ctx, api.AddRecipientsRequest{
			WorkspaceUUID: r.workspaceUUID,
			EnvelopeUUID:  ref.EnvelopeUUID,
			Recipients:    recipients,
		})
		if err != nil {
			return fmt.Errorf("failed to add recipients: %w", err)
		}
		logger.Log.Info("recipients added", "count", len(recipients), "envelope_uuid", ref.EnvelopeUUID)
	}

	blocks := BuildBlocks(signatures)
	if len(blocks) == 0 {
		return nil
	}
	for i, block := range blocks {
		logger.Log.Info("signature block", "index", i+1, "page", block.Page, "x", block.X, "y", block.Y, "recipient", block.RecipientEmail)
	}
	err := r.client.AddBlocks(ctx, api.AddBlocksRequest{
		WorkspaceUUID: r.workspaceUUID,
		EnvelopeUUID:  ref.EnvelopeUUID,
		DocumentUUID:  ref.DocumentUUID,
		Blocks:        blocks,
	})
	if err != nil {
		return fmt.Errorf("failed to add blocks: %w", err)
	}
	logger.Log.Info("signature blocks added", "count", len(blocks), "envelope_uuid", ref.EnvelopeUUID)
	return nil
}

// BuildRecipients dedupes positions by email in first-seen order. Positions
// without an email are skipped; missing names come from the email local part.
func BuildRecipients(signatures []domain.SignaturePosition) []domain.Recipient {
	seen := make(map[domain.Email]struct{}, len(signatures))
	recipients := []domain.Recipient{}

	for _, sig := range signatures {
		if sig.Email == "" {
			continue
		}
		if _, ok := seen[sig.Email]; ok {
			continue
		}
		seen[sig.Email] = struct{}{}

		fallbackFirst, fallbackLast := namesFromEmail(sig.Email)
		recipient := domain.Recipient{
			Type:      domain.RecipientTypeManual,
			Email:     sig.Email,
			Firstname: sig.RecipientFirstname,
			Lastname:  sig.RecipientLastname,
		}
		if recipient.Firstname == "" {
			recipient.Firstname = fallbackFirst
		}
		if recipient.Lastname == "" {
			recipient.Lastname = fallbackLast
		}
		recipients = append(recipients, recipient)
	}
	return recipients
}

// namesFromEmail splits the local part on dots: "jane.smith@x" gives
// ("jane", "smith"), "single@x" gives ("single", ""). Only the first two
// segments are used.
func namesFromEmail(email domain.Email) (string, string) {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.Split(local, ".")

	firstname := parts[0]
	if firstname == "" {
		firstname = fallbackFirstname
	}
	lastname := ""
	if len(parts) > 1 {
		lastname = parts[1]
	}
	return firstname, lastname
}

// BuildBlocks keeps signature markers only; the platform has no date block.
func BuildBlocks(signatures []domain.SignaturePosition) []domain.Block {
	blocks := []domain.Block{}
	for _, sig := range signatures {
		if !sig.IsSignature() {
			continue
		}
		blocks = append(blocks, domain.Block{
			Type:           domain.SignatureTypeSignature,
			Page:           strconv.Itoa(sig.Page),
			X:              sig.X,
			Y:              sig.Y,
			RecipientEmail: sig.Email,
		})
	}
	return blocks
}
