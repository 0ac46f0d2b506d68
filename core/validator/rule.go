package validator

// Rule is a deferred check paired with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs rules in order. For each field only the first failing rule is
// reported; later rules on the same field are skipped.
// It returns nil or ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check == nil || errs.Has(rule.Error.Field) {
			continue
		}
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
