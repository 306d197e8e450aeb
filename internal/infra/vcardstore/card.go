package vcardstore

import (
	"sort"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// appleLabelField carries grouped labels in vCards written by Apple Contacts
// (item1.TEL:... / item1.X-ABLabel:_$!<Mobile>!$_).
const appleLabelField = "X-ABLABEL"

// ContactFromCard maps a card's N and TEL fields. TEL fields keep the card's order.
func ContactFromCard(card vcard.Card) domain.Contact {
	var c domain.Contact

	if n := card.Name(); n != nil {
		c.GivenName = n.GivenName
		c.FamilyName = n.FamilyName
	}

	groupLabels := map[string]string{}
	for name, fs := range card {
		if !strings.EqualFold(name, appleLabelField) {
			continue
		}
		for _, f := range fs {
			if f.Group != "" {
				groupLabels[strings.ToLower(f.Group)] = f.Value
			}
		}
	}

	for _, f := range card[vcard.FieldTelephone] {
		c.PhoneNumbers = append(c.PhoneNumbers, domain.PhoneNumber{
			Label: telLabel(f, groupLabels),
			Value: telNumber(f),
		})
	}
	return c
}

// bareTelTypes are the TEL types vCard 2.1 writes without TYPE=.
var bareTelTypes = map[string]bool{
	"pref": true, "work": true, "home": true, "voice": true, "fax": true, "msg": true,
	"cell": true, "pager": true, "bbs": true, "modem": true, "car": true, "isdn": true,
	"video": true, "pcs": true, "text": true, "iphone": true, "main": true, "other": true,
}

func isBareTelType(k string) bool {
	return bareTelTypes[strings.ToLower(k)]
}

func telLabel(f *vcard.Field, groupLabels map[string]string) string {
	if l, ok := groupLabels[strings.ToLower(f.Group)]; ok && f.Group != "" {
		return domain.CanonicalLabel(l)
	}

	var types, bare []string
	for k, vals := range f.Params {
		switch {
		case strings.EqualFold(k, vcard.ParamType):
			for _, v := range vals {
				types = append(types, strings.Split(v, ",")...)
			}
		case isBareTelType(k):
			bare = append(bare, k)
		}
	}
	sort.Strings(bare)
	types = append(types, bare...)

	for i, t := range types {
		types[i] = strings.ToLower(strings.Trim(t, `" `))
		if types[i] == vcard.TypeCell {
			return domain.LabelMobile
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// telNumber returns the field value. The decoder reads the 2.1 form TEL;CELL:555-0100 as a
// CELL parameter whose value is the number, leaving the field value empty.
func telNumber(f *vcard.Field) string {
	if f.Value != "" {
		return telValue(f.Value)
	}

	keys := make([]string, 0, len(f.Params))
	for k := range f.Params {
		if isBareTelType(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range f.Params[k] {
			if v = strings.TrimSpace(v); v != "" {
				return telValue(v)
			}
		}
	}
	return ""
}

// telValue strips the tel: URI scheme vCard 4.0 uses.
func telValue(v string) string {
	if len(v) >= 4 && strings.EqualFold(v[:4], "tel:") {
		return v[4:]
	}
	return v
}
