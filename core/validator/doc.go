// Package validator checks user input and reports per-field errors carrying
// translation keys.
//
// Rules can be composed programmatically:
//
//	err := validator.Apply(
//		validator.Required("email", in.Email),
//		validator.ValidEmail("email", in.Email),
//		validator.MinLenString("password", in.Password, 8),
//	)
//
// or declared with struct tags and checked by ValidateStruct:
//
//	type RegisterInput struct {
//		Password        string `form:"password" validate:"required;min:8"`
//		ConfirmPassword string `form:"confirmPassword" validate:"required;eqfield:Password"`
//	}
//
// In both cases only the first failing rule of a field is reported, so a field
// never shows "required" and "invalid" at once. Failures come back as
// ValidationErrors; use ExtractValidationErrors to get them from a wrapped error.
package validator
