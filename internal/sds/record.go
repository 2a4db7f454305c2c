package sds

// Record is the final per-document extraction result. Every field is always
// present so downstream tabulation sees a uniform shape; an empty string
// means the field was not found, which is a normal outcome rather than an
// error.
type Record struct {
	ProductName   string `json:"product_name"`
	ProductNumber string `json:"product_number"`
	Manufacturer  string `json:"manufacturer"`
	Usage         string `json:"usage"`
	RevisionDate  string `json:"revision_date"`
	CASNumbers    string `json:"cas_numbers"`
	FileName      string `json:"file_name"`
}

// RecordColumns is the fixed column order used for tabular output.
var RecordColumns = []string{
	"Product Name",
	"Product Number",
	"Manufacturer",
	"Usage",
	"Revision Date",
	"CAS Numbers",
	"File Name",
}

// Values returns the record's fields in RecordColumns order.
func (r *Record) Values() []string {
	return []string{
		r.ProductName,
		r.ProductNumber,
		r.Manufacturer,
		r.Usage,
		r.RevisionDate,
		r.CASNumbers,
		r.FileName,
	}
}
