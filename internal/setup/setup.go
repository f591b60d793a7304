package setup

import (
	"time"

	"github.com/itchan-dev/signflow/internal/apiclient"
	"github.com/itchan-dev/signflow/internal/service"
	"github.com/itchan-dev/signflow/shared/config"
	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/itchan-dev/signflow/shared/jwt"
)

// subnotoTokenTTL bounds each signed request token; one run takes seconds.
const subnotoTokenTTL = 5 * time.Minute

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Carbone  *apiclient.CarboneClient
	Subnoto  *apiclient.SubnotoClient
	Pipeline *service.Pipeline
}

// SetupDependencies wires the pipeline. Nothing here touches the network, so
// an incomplete config is only reported once the pipeline runs.
func SetupDependencies(cfg *config.Config, contract *domain.ContractData) *Dependencies {
	carbone := apiclient.NewCarbone(cfg.Public.Carbone.ApiURL, cfg.CarboneApiKey())
	jwt := jwt.New(cfg.SubnotoAccessKey(), cfg.SubnotoSecretKey(), subnotoTokenTTL)
	subnoto := apiclient.NewSubnoto(cfg.Public.Subnoto.ApiBaseURL, jwt)

	workspace := cfg.Public.Subnoto.WorkspaceUUID
	renderer := service.NewRenderer(carbone, cfg.Public.Carbone.TemplateId, contract)
	builder := service.NewEnvelopeBuilder(subnoto, workspace, cfg.Public.EnvelopeTitle)
	registrar := service.NewRegistrar(subnoto, workspace)
	dispatcher := service.NewDispatcher(subnoto, workspace)

	return &Dependencies{
		Carbone:  carbone,
		Subnoto:  subnoto,
		Pipeline: service.NewPipeline(cfg, renderer, builder, registrar, dispatcher),
	}
}
