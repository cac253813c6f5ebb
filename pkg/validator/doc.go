// Package validator builds declarative validation from small Rule values.
//
// A Rule couples a Check func with a translation-friendly ValidationError.
// Apply runs rules and collects every failure into ValidationErrors, which
// implements error and matches ErrValidationFailed with errors.Is.
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.MatchesTemplate("email", email, regex.Email),
//	    validator.Parses[uint16]("port", port),
//	    validator.InRange("size", size, 1, 4096),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        fmt.Println(f, verrs.Get(f))
//	    }
//	}
//
// Template rules use the regex package, numeric rules use the convert
// parsers, so a rule accepts exactly what the matching function accepts.
package validator
