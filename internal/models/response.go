package models

// Response is one form submission. A nil field means the cell was empty in
// the export or the column was never resolved.
type Response struct {
	Timestamp      *string `csv:"timestamp,omitempty"`
	FullName       *string `csv:"full_name,omitempty"`
	Programme      *string `csv:"programme,omitempty"`
	Year           *string `csv:"year,omitempty"`
	Email          *string `csv:"email,omitempty"`
	Contact        *string `csv:"contact,omitempty"`
	HasAccount     *string `csv:"has_account,omitempty"`
	WantsEcobank   *string `csv:"wants_ecobank,omitempty"`
	CardPreference *string `csv:"card_preference,omitempty"`
}

// Value returns the cell holding the answer to field f.
func (r Response) Value(f Field) *string {
	switch f {
	case FieldTimestamp:
		return r.Timestamp
	case FieldFullName:
		return r.FullName
	case FieldProgramme:
		return r.Programme
	case FieldYear:
		return r.Year
	case FieldEmail:
		return r.Email
	case FieldContact:
		return r.Contact
	case FieldHasAccount:
		return r.HasAccount
	case FieldWantsEcobank:
		return r.WantsEcobank
	case FieldCardPreference:
		return r.CardPreference
	}
	return nil
}
