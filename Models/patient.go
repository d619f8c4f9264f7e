package Models

import (
	"strings"
)

// Sheet header names the handlers look up by value. The header row of the
// sheet is authoritative for column positions; these constants only name the
// columns the code needs to find.
const (
	HeaderPatientID  = "Patient ID"
	HeaderVisitDays  = "visit days"
	HeaderVisitCount = "Visit Count"
)

// PatientIDKey is the normalized identifier key the front end expects on
// today's-visit records, regardless of the sheet header spelling.
const PatientIDKey = "Patient_ID"

// Patient is one sheet row keyed by the header row. Ragged rows leave the
// trailing keys absent.
type Patient map[string]string

// NewPatient is the create request body. Key spellings follow the front end's
// contract, not the sheet headers.
type NewPatient struct {
	PatientID  string   `json:"Patient_ID"`
	Name       string   `json:"Name"`
	Number     string   `json:"number"`
	Age        string   `json:"Age"`
	Gender     string   `json:"Gender"`
	Occupation string   `json:"Occupation"`
	ReferredBy string   `json:"Ref. by"`
	Address    string   `json:"Address"`
	JoinDate   string   `json:"Date of joining"`
	Conditions string   `json:"conditions"`
	Time       string   `json:"Time"`
	VisitDays  []string `json:"visit days"`
	VisitCount string   `json:"Visit Count"`
}

// MapRow pairs header names with cell values positionally. Cells past the end
// of a short row are omitted, not defaulted.
func MapRow(headers []string, row []string) Patient {
	p := make(Patient, len(headers))
	for i, h := range headers {
		if i >= len(row) {
			break
		}
		p[h] = row[i]
	}
	return p
}

// Row lays the patient out in the sheet's fixed column order. The order must
// mirror the live header row; new columns belong at the end of both.
func (np NewPatient) Row() []interface{} {
	visitCount := np.VisitCount
	if visitCount == "" {
		visitCount = "0"
	}

	return []interface{}{
		np.PatientID,
		np.Name,
		np.Number,
		np.Age,
		np.Gender,
		np.Occupation,
		np.ReferredBy,
		np.Address,
		np.JoinDate,
		np.Conditions,
		np.Time,
		strings.Join(np.VisitDays, ","),
		visitCount,
		"No",
	}
}

// HeaderIndex returns the position of name in the header row, or -1.
func HeaderIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}
