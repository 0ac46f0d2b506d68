// Package binder decodes HTML form submissions into tagged structs.
//
// Form accepts application/x-www-form-urlencoded and multipart/form-data
// bodies. String values are stripped of control characters before they are
// assigned.
//
//	var in struct {
//		Email  string            `form:"email"`
//		Errors map[string]string `form:"error.*"`
//	}
//	if err := binder.Form()(r, &in); err != nil {
//		return err
//	}
package binder
