package validation

import (
	"bytes"
	"fmt"

	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/utils"
)

const (
	pdfMagic          = "%PDF"
	leadingBytesShown = 50
)

// ValidatePDF checks the magic header of a downloaded document. The error
// carries the leading bytes so a JSON error body shows up in the logs.
func ValidatePDF(doc []byte) error {
	if len(doc) == 0 {
		return fmt.Errorf("%w: %w", internal_errors.ErrInvalidPDF, ErrEmptyDocument)
	}
	if !bytes.HasPrefix(doc, []byte(pdfMagic)) {
		return fmt.Errorf("%w. First bytes: %s", internal_errors.ErrInvalidPDF, utils.Truncate(doc, leadingBytesShown))
	}
	return nil
}
