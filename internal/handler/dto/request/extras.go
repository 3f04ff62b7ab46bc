package request

import "petagenda/internal/usecase/commands"

// ExtrasActionRequest targets one ledger key. Value is the raw text as
// typed: it is only parsed at sanitize time, and only the value/quantity
// endpoints read it.
type ExtrasActionRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (r ExtrasActionRequest) ToAction(op commands.ExtrasOp) commands.ExtrasAction {
	return commands.ExtrasAction{
		Op:  op,
		Key: r.Key,
		Raw: r.Value,
	}
}
