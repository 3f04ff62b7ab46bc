package commands

import (
	"petagenda/internal/domain/billing"
	"petagenda/internal/pkg/errs"
)

type ExtrasOp string

const (
	ExtrasOpToggle      ExtrasOp = "toggle"
	ExtrasOpSetValue    ExtrasOp = "set_value"
	ExtrasOpSetQuantity ExtrasOp = "set_quantity"
)

// ExtrasAction is one ledger mutation against a billable entity's snapshot.
type ExtrasAction struct {
	Op  ExtrasOp
	Key string
	Raw string
}

// applyExtrasAction runs the pure ledger mutator and sanitizes the result
// for persistence. Sanitize failing means the raw text is not numeric, which
// aborts before any write.
func applyExtrasAction(snap billing.Snapshot, action ExtrasAction) (billing.Snapshot, error) {
	switch action.Op {
	case ExtrasOpToggle:
		snap = billing.Toggle(snap, action.Key)
	case ExtrasOpSetValue:
		snap = billing.SetValue(snap, action.Key, action.Raw)
	case ExtrasOpSetQuantity:
		snap = billing.SetQuantity(snap, action.Key, action.Raw)
	default:
		return nil, errs.Mark(errs.Newf("unknown extras op %q", action.Op), ErrValidation)
	}

	sanitized, err := billing.Sanitize(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	return sanitized, nil
}
