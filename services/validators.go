package services

// Per-field registration checks. Deliberately shallow for now; the
// client does the heavy validation.
// TODO: expand backend validation

func validateEmail(email string) bool {
	return email != ""
}

func validateFirstName(first string) bool {
	return first != ""
}

func validateLastName(last string) bool {
	return last != ""
}

func validatePassword(password string) bool {
	return password != ""
}

func validatePhone(phone string) bool {
	return phone != ""
}

func validateRegisterPayload(p RegisterPayload) bool {
	return validateEmail(p.Email) &&
		validateFirstName(p.First) &&
		validateLastName(p.Last) &&
		validatePassword(p.Password) &&
		validatePhone(p.Phone)
}
