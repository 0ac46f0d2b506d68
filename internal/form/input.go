package form

import "slices"

// LoginInput is the login form as validated on submit.
type LoginInput struct {
	Email    string `form:"email" validate:"required;email"`
	Password string `form:"password" validate:"required"`
}

// RegisterInput is the sign-up form as validated on submit.
type RegisterInput struct {
	Email           string `form:"email" validate:"required;email"`
	FoodTruckName   string `form:"foodTruckName" validate:"required"`
	Password        string `form:"password" validate:"required;min:8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required;eqfield:Password"`
}

// Kind selects one of the two forms.
type Kind string

const (
	Login    Kind = "login"
	Register Kind = "register"
)

// Fields lists the form's inputs in display order.
func (k Kind) Fields() []string {
	switch k {
	case Register:
		return []string{"email", "foodTruckName", "password", "confirmPassword"}
	default:
		return []string{"email", "password"}
	}
}

// Path is the page the form lives on.
func (k Kind) Path() string {
	return "/" + string(k)
}

// EditPath receives per-field edit notifications.
func (k Kind) EditPath() string {
	return k.Path() + "/edit"
}

func (k Kind) has(field string) bool {
	return slices.Contains(k.Fields(), field)
}

func (k Kind) input(values map[string]string) any {
	if k == Register {
		return &RegisterInput{
			Email:           values["email"],
			FoodTruckName:   values["foodTruckName"],
			Password:        values["password"],
			ConfirmPassword: values["confirmPassword"],
		}
	}
	return &LoginInput{
		Email:    values["email"],
		Password: values["password"],
	}
}
