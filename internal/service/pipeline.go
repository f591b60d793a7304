package service

import (
	"context"

	"github.com/itchan-dev/signflow/shared/domain"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/logger"
	"github.com/itchan-dev/signflow/shared/metrics"
)

type Stage string

const (
	StageValidateConfig Stage = "validate_config"
	StageRender         Stage = "render"
	StageBuildEnvelope  Stage = "build_envelope"
	StageRegister       Stage = "register"
	StageDispatch       Stage = "dispatch"
	StageDone           Stage = "done"
	StageFailed         Stage = "failed"
)

type ConfigValidator interface {
	Validate() error
}

// Pipeline runs the stages in a fixed order and stops at the first failure.
// Nothing already created upstream is rolled back.
type Pipeline struct {
	config     ConfigValidator
	renderer   DocumentRenderer
	builder    EnvelopeCreator
	registrar  RecipientRegistrar
	dispatcher EnvelopeDispatcher
	stage      Stage
}

func NewPipeline(config ConfigValidator, renderer DocumentRenderer, builder EnvelopeCreator, registrar RecipientRegistrar, dispatcher EnvelopeDispatcher) *Pipeline {
	return &Pipeline{
		config:     config,
		renderer:   renderer,
		builder:    builder,
		registrar:  registrar,
		dispatcher: dispatcher,
		stage:      StageValidateConfig,
	}
}

// Stage reports where the pipeline is, or where it ended.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

func (p *Pipeline) Run(ctx context.Context) (domain.EnvelopeRef, error) {
	var (
		doc *RenderedDocument
		ref domain.EnvelopeRef
	)

	steps := []struct {
		stage Stage
		run   func() error
	}{
		{StageValidateConfig, func() error {
			return p.config.Validate()
		}},
		{StageRender, func() (err error) {
			doc, err = p.renderer.Render(ctx)
			return err
		}},
		{StageBuildEnvelope, func() (err error) {
			ref, err = p.builder.Create(ctx, doc.PDF)
			return err
		}},
		{StageRegister, func() error {
			return p.registrar.Register(ctx, ref, doc.Signatures)
		}},
		{StageDispatch, func() error {
			return p.dispatcher.Send(ctx, ref.EnvelopeUUID)
		}},
	}

	for _, step := range steps {
		p.stage = step.stage
		logger.Log.Info("stage started", "stage", step.stage)

		err := step.run()
		metrics.ObserveStage(string(step.stage), err)
		if err != nil {
			p.stage = StageFailed
			return domain.EnvelopeRef{}, &internal_errors.StageError{Stage: string(step.stage), Err: err}
		}
	}

	p.stage = StageDone
	return ref, nil
}
