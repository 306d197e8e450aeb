package domain

import "strings"

// LabelMobile is the canonical label of a contact's mobile number. Stores translate their
// native labels (e.g. "_$!<Mobile>!$_", vCard TYPE=cell) into it.
const LabelMobile = "mobile"

// CanonicalLabel unwraps the built-in labels Apple Contacts stores ("_$!<Mobile>!$_" -> "mobile").
// Custom labels are returned unchanged.
func CanonicalLabel(l string) string {
	const prefix, suffix = "_$!<", ">!$_"
	if len(l) >= len(prefix)+len(suffix) && strings.HasPrefix(l, prefix) && strings.HasSuffix(l, suffix) {
		return strings.ToLower(l[len(prefix) : len(l)-len(suffix)])
	}
	return l
}

// Field names a contact attribute a store is asked to fetch.
type Field string

const (
	FieldGivenName    Field = "given_name"
	FieldFamilyName   Field = "family_name"
	FieldPhoneNumbers Field = "phone_numbers"
)

// ExportFields is the field set the exporter requests.
var ExportFields = []Field{FieldGivenName, FieldFamilyName, FieldPhoneNumbers}

// PhoneNumber is a labeled number as stored, unnormalized.
type PhoneNumber struct {
	Label string
	Value string
}

// Contact is the raw shape a store yields.
type Contact struct {
	GivenName    string
	FamilyName   string
	PhoneNumbers []PhoneNumber
}

// MobileNumber returns the first number labeled mobile, in the order the store reported them.
func (c Contact) MobileNumber() (string, bool) {
	for _, p := range c.PhoneNumbers {
		if p.Label == LabelMobile {
			return p.Value, true
		}
	}
	return "", false
}

// Project blanks every attribute not listed in fields.
func (c Contact) Project(fields []Field) Contact {
	var out Contact
	for _, f := range fields {
		switch f {
		case FieldGivenName:
			out.GivenName = c.GivenName
		case FieldFamilyName:
			out.FamilyName = c.FamilyName
		case FieldPhoneNumbers:
			out.PhoneNumbers = c.PhoneNumbers
		}
	}
	return out
}

// ContactRecord is one exportable contact: names plus the raw mobile number.
type ContactRecord struct {
	GivenName    string
	FamilyName   string
	MobileNumber string
}
