package wager

// ReasonExceedsWages is the rejection reason when the bet is larger than the balance
const ReasonExceedsWages = "requested amount exceeds current wages"

// Verdict is the outcome of a wager check. Wages and Requested echo the inputs.
type Verdict struct {
	Accepted  bool   `json:"accepted"`
	Reason    string `json:"reason,omitempty"`
	Wages     int64  `json:"wages"`
	Requested int64  `json:"requested"`
}

// Validate rejects a wager when requested is strictly greater than wages and
// accepts it otherwise. Negative amounts and negative balances are not special-cased.
func Validate(wages, requested int64) Verdict {
	v := Verdict{Accepted: true, Wages: wages, Requested: requested}
	if requested > wages {
		v.Accepted = false
		v.Reason = ReasonExceedsWages
	}
	return v
}
