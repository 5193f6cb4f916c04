package domain

// OperationCodeStatus marks a reference code as usable or retired.
type OperationCodeStatus string

const (
	CodeActive   OperationCodeStatus = "active"
	CodeInactive OperationCodeStatus = "inactive"
)

// OperationCode is one row of the small operation reference table.
type OperationCode struct {
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      OperationCodeStatus `json:"status"`
}

// DefaultOperationCodes seeds the reference table on first boot and on reset.
func DefaultOperationCodes() []OperationCode {
	return []OperationCode{
		{Code: "OP-01", Name: "Naqd pul kirim", Description: "Mijozdan kassaga naqd pul qabul qilish operatsiyasi", Status: CodeActive},
		{Code: "OP-02", Name: "Naqd pul chiqim", Description: "Kassadan mijozga naqd pul berish operatsiyasi", Status: CodeActive},
		{Code: "OP-03", Name: "Kredit berish", Description: "Mijozga kredit ajratish va pul berish operatsiyasi", Status: CodeActive},
		{Code: "OP-04", Name: "Valyuta ayirboshlash", Description: "Xorijiy valyutani sotib olish yoki sotish operatsiyasi", Status: CodeActive},
		{Code: "OP-05", Name: "Omonat ochish", Description: "Mijoz uchun yangi omonat hisobi ochish operatsiyasi", Status: CodeActive},
	}
}
