package service

import (
	"encoding/json"
	"math"

	"github.com/itchan-dev/signflow/shared/domain"
	"github.com/itchan-dev/signflow/shared/logger"
)

// ExtractSignaturePositions reads the signature markers the rendering service
// reports under data.signatures. Anything missing or of the wrong shape falls
// back to defaults; a body without the array yields no positions.
func ExtractSignaturePositions(body map[string]any) []domain.SignaturePosition {
	positions := []domain.SignaturePosition{}

	data, _ := body["data"].(map[string]any)
	rawSignatures, ok := data["signatures"].([]any)
	if !ok {
		return positions
	}

	for _, raw := range rawSignatures {
		sig, _ := raw.(map[string]any)
		descriptor, _ := sig["data"].(map[string]any)

		position := domain.SignaturePosition{
			X:                  firstNumber(sig, "x", "left"),
			Y:                  firstNumber(sig, "y", "top"),
			Page:               pageNumber(sig["page"]),
			Type:               domain.SignatureTypeSignature,
			Email:              stringField(descriptor, "email"),
			RecipientFirstname: stringField(descriptor, "recipientFirstname"),
			RecipientLastname:  stringField(descriptor, "recipientLastname"),
		}
		if t, _ := descriptor["type"].(string); t == string(domain.SignatureTypeDate) {
			position.Type = domain.SignatureTypeDate
		}
		positions = append(positions, position)
	}

	logger.Log.Info("extracted signature positions", "count", len(positions))
	return positions
}

// firstNumber returns the first non-zero numeric value among keys, or 0.
func firstNumber(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if n := number(m[key]); n != 0 {
			return n
		}
	}
	return 0
}

func pageNumber(v any) int {
	page := int(number(v))
	if page < 1 {
		return 1
	}
	return page
}

// number accepts the numeric types a JSON decoder can produce; anything else is 0.
func number(v any) float64 {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		n = f
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
