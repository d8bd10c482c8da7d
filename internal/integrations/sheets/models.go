package sheets

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// requiredHeaders are the column titles (lowercased) every booking sheet
// has to carry in row 1 of columns B to L. The actual column order inside
// the sheet may differ, rows are written in the order found there.
var requiredHeaders = []string{
	"buchungsdatum",
	"vorname",
	"nachname",
	"straße & nr",
	"plz & ort",
	"email",
	"telefon",
	"sve-mitglied",
	"betrag",
	"bezahlt",
	"kommentar",
}

type spreadsheetResponse struct {
	Sheets []struct {
		Properties struct {
			SheetID int64  `json:"sheetId"`
			Title   string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}
