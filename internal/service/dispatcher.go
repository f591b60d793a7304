package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/signflow/shared/api"
	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/itchan-dev/signflow/shared/logger"
)

type EnvelopeDispatcher interface {
	Send(ctx context.Context, envelopeUUID domain.EnvelopeUUID) error
}

type EnvelopeSender interface {
	SendEnvelope(ctx context.Context, data api.SendEnvelopeRequest) error
}

type Dispatcher struct {
	client        EnvelopeSender
	workspaceUUID domain.WorkspaceUUID
}

func NewDispatcher(client EnvelopeSender, workspaceUUID domain.WorkspaceUUID) EnvelopeDispatcher {
	return &Dispatcher{client, workspaceUUID}
}

func (d *Dispatcher) Send(ctx context.Context, envelopeUUID domain.EnvelopeUUID) error {
	err := d.client.SendEnvelope(ctx, api.SendEnvelopeRequest{
		WorkspaceUUID: d.workspaceUUID,
		EnvelopeUUID:  envelopeUUID,
	})
	if err != nil {
		return fmt.Errorf("subnoto send error: %w", err)
	}

	logger.Log.Info("envelope sent", "envelope_uuid", envelopeUUID)
	return nil
}
