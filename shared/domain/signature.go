package domain

type SignatureType string

const (
	SignatureTypeSignature SignatureType = "signature"
	SignatureTypeDate      SignatureType = "date"
)

// SignaturePosition is a placement reported by the rendering service for a
// signature or date field in the rendered document.
type SignaturePosition struct {
	X                  float64
	Y                  float64
	Page               int
	Type               SignatureType
	Email              Email // empty when the descriptor carries no email
	RecipientFirstname string
	RecipientLastname  string
}

func (s SignaturePosition) IsSignature() bool {
	return s.Type == SignatureTypeSignature
}
