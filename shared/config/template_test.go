package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContract_Default(t *testing.T) {
	data, err := LoadContract("")
	require.NoError(t, err)

	assert.Equal(t, "Marketing director", data.JobTitle)
	assert.Equal(t, "54000 €", data.Salary.Value)
	assert.Equal(t, domain.SignatureTypeDate, data.Company.SignatureDate.Type)
	assert.Equal(t, domain.SignatureTypeSignature, data.Employee.Signature.Type)
	assert.Equal(t, "john.doe@example.com", data.Employee.Signature.Email)
}

func TestLoadContract_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	raw := []byte(`job_title: Engineer
company:
  name: Initech
  signature_date: {type: date, email: bill@initech.com}
  signature: {type: signature, email: bill@initech.com}
employee:
  name: Peter
  signature_date: {type: date, email: peter@initech.com}
  signature: {type: signature, email: peter@initech.com}
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	data, err := LoadContract(path)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", data.JobTitle)
	assert.Equal(t, "Initech", data.Company.Name)
}

func TestParseContract_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "unknown field", raw: "job_title: x\nbonus: 1\n"},
		{name: "missing signer email", raw: `job_title: x
company: {name: c, signature_date: {type: date, email: a@b.c}, signature: {type: signature}}
employee: {name: e, signature_date: {type: date, email: a@b.c}, signature: {type: signature, email: a@b.c}}
`},
		{name: "bad marker type", raw: `job_title: x
company: {name: c, signature_date: {type: stamp, email: a@b.c}, signature: {type: signature, email: a@b.c}}
employee: {name: e, signature_date: {type: date, email: a@b.c}, signature: {type: signature, email: a@b.c}}
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseContract([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadContract_MissingFile(t *testing.T) {
	_, err := LoadContract(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
