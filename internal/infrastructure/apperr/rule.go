package apperr

type Rule string

const (
	RuleRequired      Rule = "required"
	RuleInvalidFormat Rule = "invalid_format"
	RuleTooLong       Rule = "too_long"
	RuleNotFound      Rule = "not_found"
	RuleRejected      Rule = "rejected"
	RuleForbidden     Rule = "forbidden"
)
