// Package validator provides a small rule engine for validating request input.
//
// A Rule pairs a predicate with the ValidationError reported when the
// predicate fails. Apply evaluates every rule in order and collects all
// failures, so a form can show each problem at once instead of one per submit:
//
//	err := validator.Apply(
//	    validator.LengthBetween("name", name, 2, 80),
//	    validator.Email("email", email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        fmt.Println(e.Field, e.TranslationKey)
//	    }
//	}
//
// Each ValidationError carries a TranslationKey and TranslationValues so the
// caller can render a localized message; Message holds an English fallback.
// Lengths are counted in runes, not bytes.
package validator
