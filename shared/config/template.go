package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/itchan-dev/signflow/shared/domain"
	"gopkg.in/yaml.v2"
)

//go:embed contract.yaml
var defaultContract []byte

// LoadContract reads the template data rendered into the contract. An empty
// path selects the data bundled with the binary.
func LoadContract(contractPath string) (*domain.ContractData, error) {
	raw := defaultContract
	if contractPath != "" {
		b, err := os.ReadFile(contractPath)
		if err != nil {
			return nil, fmt.Errorf("can't read contract data %s: %w", contractPath, err)
		}
		raw = b
	}
	return ParseContract(raw)
}

func ParseContract(raw []byte) (*domain.ContractData, error) {
	var data domain.ContractData
	if err := yaml.UnmarshalStrict(raw, &data); err != nil {
		return nil, fmt.Errorf("can't unmarshal contract data: %w", err)
	}
	if err := validate.Struct(&data); err != nil {
		return nil, fmt.Errorf("invalid contract data: %w", err)
	}
	return &data, nil
}
