package rules

// Policy groups the tunable knobs of the rule engine
type Policy struct {
	// RegistrationLeadDays is the number of full days before the start date
	// at which registrations close
	RegistrationLeadDays int
	// AllowRepeatEvaluations lets a judge record more than one evaluation
	// for the same team
	AllowRepeatEvaluations bool
}

var DefaultPolicy = Policy{
	RegistrationLeadDays:   2,
	AllowRepeatEvaluations: false,
}
