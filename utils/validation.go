package utils

import (
	"MediDesk/models"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ParseToken validates user-supplied token text and converts it to the
// numeric token. Non-digit input is an input error, never a lookup failure.
func ParseToken(token string) (int, error) {
	if err := validation.Validate(token, validation.Required, is.Digit); err != nil {
		return 0, models.ErrInvalidToken
	}
	number, err := strconv.Atoi(token)
	if err != nil {
		return 0, models.ErrInvalidToken
	}
	return number, nil
}

// ValidateCallbackRequest checks an anonymous callback submission. All
// three fields are required.
func ValidateCallbackRequest(request models.CallbackRequest) error {
	return validation.ValidateStruct(&request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&request.Phone, validation.Required, validation.Length(1, 15)),
		validation.Field(&request.PreferredTime, validation.Required, validation.Length(1, 50)),
	)
}

// ValidateDoctor checks staff input for a doctor record.
func ValidateDoctor(doctor models.Doctor) error {
	return validation.ValidateStruct(&doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.Specialization, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.DepartmentID, validation.Required),
		validation.Field(&doctor.Email, validation.Required, is.Email),
		validation.Field(&doctor.Experience, validation.Min(0)),
	)
}

// ValidateDepartment checks staff input for a department record.
func ValidateDepartment(department models.Department) error {
	return validation.ValidateStruct(&department,
		validation.Field(&department.Name, validation.Required, validation.Length(1, 100)),
	)
}

// ValidateInvoiceAmounts rejects negative monetary inputs. The derived
// total is not checked here; it is recomputed on save.
func ValidateInvoiceAmounts(invoice models.Invoice) error {
	return validation.Errors{
		"consultation_fee": validateNonNegative(invoice.ConsultationFee),
		"medicine_cost":    validateNonNegative(invoice.MedicineCost),
		"other_charges":    validateNonNegative(invoice.OtherCharges),
	}.Filter()
}

func validateNonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return validation.NewError("validation_min", "must be no less than 0")
	}
	return nil
}
