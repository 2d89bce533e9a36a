package models

// Field is a logical survey question. The physical column that answers it
// varies between form exports and is found by keyword matching.
type Field int

const (
	FieldTimestamp Field = iota
	FieldFullName
	FieldProgramme
	FieldYear
	FieldEmail
	FieldContact
	FieldHasAccount
	FieldWantsEcobank
	FieldCardPreference
)

// Fields lists every logical field in resolution order.
var Fields = []Field{
	FieldTimestamp,
	FieldFullName,
	FieldProgramme,
	FieldYear,
	FieldEmail,
	FieldContact,
	FieldHasAccount,
	FieldWantsEcobank,
	FieldCardPreference,
}

var fieldKeys = map[Field]string{
	FieldTimestamp:      "timestamp",
	FieldFullName:       "full_name",
	FieldProgramme:      "programme",
	FieldYear:           "year",
	FieldEmail:          "email",
	FieldContact:        "contact",
	FieldHasAccount:     "has_account",
	FieldWantsEcobank:   "wants_ecobank",
	FieldCardPreference: "card_preference",
}

var fieldLabels = map[Field]string{
	FieldTimestamp:      "Timestamp",
	FieldFullName:       "Full name",
	FieldProgramme:      "Programme",
	FieldYear:           "Year",
	FieldEmail:          "Email",
	FieldContact:        "Contact",
	FieldHasAccount:     "Has bank account",
	FieldWantsEcobank:   "Wants Ecobank account",
	FieldCardPreference: "Card preference",
}

// Key is the decode header name used for the field's column.
func (f Field) Key() string {
	if k, ok := fieldKeys[f]; ok {
		return k
	}
	return "unknown"
}

func (f Field) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return "Unknown"
}
