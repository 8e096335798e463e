package domain

type PartyType string

const (
	PartyCustomer PartyType = "Customer"
	PartySupplier PartyType = "Supplier"
)

// ValidPartyTypes is the canonical set of accepted party type strings.
var ValidPartyTypes = map[string]bool{
	"Customer": true, "Supplier": true,
}

// Doctype names a record type in the document store. Values mirror the
// human-readable doctype labels used by the ERP host.
type Doctype string

const (
	DoctypeProject         Doctype = "Project"
	DoctypeTask            Doctype = "Task"
	DoctypeTimesheet       Doctype = "Timesheet"
	DoctypeProjectType     Doctype = "Project Type"
	DoctypeProjectTemplate Doctype = "Project Template"

	DoctypeSalesOrder        Doctype = "Sales Order"
	DoctypeSalesInvoice      Doctype = "Sales Invoice"
	DoctypeDeliveryNote      Doctype = "Delivery Note"
	DoctypeQuotation         Doctype = "Quotation"
	DoctypeSupplierQuotation Doctype = "Supplier Quotation"
	DoctypePurchaseOrder     Doctype = "Purchase Order"
	DoctypePurchaseInvoice   Doctype = "Purchase Invoice"
	DoctypePurchaseReceipt   Doctype = "Purchase Receipt"
)

// DocStatus follows the host store's lifecycle encoding.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

type ProjectStatus string

const (
	ProjectOpen      ProjectStatus = "open"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type TaskStatus string

const (
	TaskOpen      TaskStatus = "open"
	TaskWorking   TaskStatus = "working"
	TaskCompleted TaskStatus = "completed"
	TaskCancelled TaskStatus = "cancelled"
)
