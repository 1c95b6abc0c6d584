package models

// Invoice amounts are decimal strings as entered; Items is the flattened
// "description: price" list (see store.FormatItems).
type Invoice struct {
	ID             uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	InvoiceNo      string `json:"invoice_no" gorm:"column:invoice_no;type:text;not null"`
	DueDate        string `json:"due_date" gorm:"column:due_date;type:text"`
	ClientName     string `json:"client_name" gorm:"column:client_name;type:text"`
	ClientEmail    string `json:"client_email" gorm:"column:client_email;type:text"`
	CompanyName    string `json:"company_name" gorm:"column:company_name;type:text"`
	CompanyAddress string `json:"company_address" gorm:"column:company_address;type:text"`
	Items          string `json:"items" gorm:"column:items;type:text"`
	Subtotal       string `json:"subtotal" gorm:"column:subtotal;type:text"`
	Tax            string `json:"tax" gorm:"column:tax;type:text"`
	Total          string `json:"total" gorm:"column:total;type:text"`
	PaymentMethod  string `json:"payment_method" gorm:"column:payment_method;type:text"`
	InvoiceDate    string `json:"invoice_date" gorm:"column:invoice_date;type:text"`
	Username       string `json:"username" gorm:"column:username;type:text"`
}

func (Invoice) TableName() string { return "invoices" }
