package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
)

const (
	FieldTitle        = "title"
	FieldCID          = "ipfs_cid"
	FieldTokenID      = "token_id"
	FieldOwnerAddress = "owner_address"
)

// RequestValidator validates inbound marketplace requests before they reach
// the storage or chain layers.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateDatasetRequest:
		return v.validateCreateDataset(ctx, value, fields...)
	case *models.CreateDatasetRequest:
		return v.validateCreateDataset(ctx, *value, fields...)

	case models.FinalizeRequest:
		return v.validateFinalize(ctx, value, fields...)
	case *models.FinalizeRequest:
		return v.validateFinalize(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCreateDataset(_ context.Context, request models.CreateDatasetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCID}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if request.Title == "" {
				return ErrEmptyTitle
			}
		case FieldCID:
			if request.CID == "" {
				return ErrEmptyCID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateFinalize(_ context.Context, request models.FinalizeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCID, FieldTokenID, FieldOwnerAddress}
	}

	for _, field := range fields {
		switch field {
		case FieldCID:
			if request.CID == "" {
				return ErrEmptyCID
			}
		case FieldTokenID:
			if request.TokenID <= 0 {
				return ErrInvalidTokenID
			}
		case FieldOwnerAddress:
			// optional on finalize; validated only when present
			if request.OwnerAddress != "" && !common.IsHexAddress(request.OwnerAddress) {
				return ErrInvalidOwnerAddress
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
