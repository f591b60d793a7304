package domain

// SignatureField is the descriptor a template places on a signature or date
// marker. The rendering service echoes it back next to the marker coordinates.
type SignatureField struct {
	Type               SignatureType `yaml:"type" json:"type" validate:"required,oneof=signature date"`
	Email              Email         `yaml:"email" json:"email" validate:"required,email"`
	RecipientFirstname string        `yaml:"recipientFirstname" json:"recipientFirstname"`
	RecipientLastname  string        `yaml:"recipientLastname" json:"recipientLastname"`
}

type Salary struct {
	Value  string `yaml:"value" json:"value"`
	Period string `yaml:"period" json:"period"`
}

type Agreement struct {
	StartDate string `yaml:"start_date" json:"start_date"`
}

type Company struct {
	Name                string         `yaml:"name" json:"name" validate:"required"`
	Country             string         `yaml:"country" json:"country"`
	Address             string         `yaml:"address" json:"address"`
	RepresentativeName  string         `yaml:"representative_name" json:"representative_name"`
	RepresentativeTitle string         `yaml:"representative_title" json:"representative_title"`
	SignatureDate       SignatureField `yaml:"signature_date" json:"signature_date"`
	Signature           SignatureField `yaml:"signature" json:"signature"`
}

type Employee struct {
	Name          string         `yaml:"name" json:"name" validate:"required"`
	Address       string         `yaml:"address" json:"address"`
	SignatureDate SignatureField `yaml:"signature_date" json:"signature_date"`
	Signature     SignatureField `yaml:"signature" json:"signature"`
}

// ContractData is the data payload rendered into the employment contract template.
// Field names follow the template's placeholders, typos included.
type ContractData struct {
	JobTitle           string    `yaml:"job_title" json:"job_title" validate:"required"`
	StartDate          string    `yaml:"start_date" json:"start_date"`
	FixedTerm          bool      `yaml:"fixed_term" json:"fixed_term"`
	EndDate            string    `yaml:"end_date" json:"end_date"`
	WorkingHours       string    `yaml:"working_hours" json:"working_hours"`
	WorkingHoursPeriod string    `yaml:"working_hours_period" json:"working_hours_period"`
	DayStartTime       string    `yaml:"day_start_time" json:"day_start_time"`
	DayEndTime         string    `yaml:"day_end_time" json:"day_end_time"`
	HealthInsurance    bool      `yaml:"health_insurance" json:"health_insurance"`
	RetirementPlan     bool      `yaml:"retirement_plan" json:"retirement_plan"`
	Exlusivity         bool      `yaml:"exlusivity" json:"exlusivity"`
	Agreement          Agreement `yaml:"agreement" json:"agreement"`
	Salary             Salary    `yaml:"salary" json:"salary"`
	Company            Company   `yaml:"company" json:"company"`
	Employee           Employee  `yaml:"employee" json:"employee"`
}
