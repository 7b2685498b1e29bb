package validators

import (
	"strings"

	"letterChat/internal/delivery"
	"letterChat/internal/errs"
	"letterChat/internal/models"
)

func ValidateLetter(body *models.SendMessageRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if strings.TrimSpace(body.Text) == "" {
		errors = append(errors, errs.ErrEmptyLetter)
	}

	if body.DelaySeconds < 0 {
		errors = append(errors, errs.ErrNegativeDelay)
	} else if !delivery.IsKnownPreset(body.DelaySeconds, delivery.ExtendedPresets) {
		errors = append(errors, errs.ErrUnknownDelayPreset)
	}

	return errors
}
