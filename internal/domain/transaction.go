package domain

import "time"

// Transaction is a transactional document (order, invoice, note, quotation)
// referencing a party whose license is checked at save time. Only the party
// reference fields relevant to that check are modeled; item tables and
// amounts stay with the host.
type Transaction struct {
	Name        string
	Doctype     Doctype
	Customer    string
	Supplier    string
	QuotationTo string
	PartyName   string
	Project     string
	DocStatus   DocStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// partyRefByDoctype is the explicit doctype-to-party-field mapping. The
// original computed field names from doctype strings at runtime; here the
// mapping is enumerated and covered by tests.
var partyRefByDoctype = map[Doctype]PartyType{
	DoctypeSalesOrder:   PartyCustomer,
	DoctypeSalesInvoice: PartyCustomer,
	DoctypeDeliveryNote: PartyCustomer,

	DoctypeSupplierQuotation: PartySupplier,
	DoctypePurchaseOrder:     PartySupplier,
	DoctypePurchaseInvoice:   PartySupplier,
	DoctypePurchaseReceipt:   PartySupplier,
}

// PartyRef resolves which party this transaction references for license
// validation. Quotations carry the party in party_name and only qualify
// when addressed to a Customer. ok is false for doctypes outside the
// license-checked set or when the reference field is empty.
func (t *Transaction) PartyRef() (partyType PartyType, partyName string, ok bool) {
	if t.Doctype == DoctypeQuotation {
		if t.QuotationTo != string(PartyCustomer) || t.PartyName == "" {
			return "", "", false
		}
		return PartyCustomer, t.PartyName, true
	}

	pt, found := partyRefByDoctype[t.Doctype]
	if !found {
		return "", "", false
	}
	switch pt {
	case PartyCustomer:
		partyName = t.Customer
	case PartySupplier:
		partyName = t.Supplier
	}
	if partyName == "" {
		return "", "", false
	}
	return pt, partyName, true
}
