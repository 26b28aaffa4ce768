package domain

type ReportType string

const (
	ReportDamaged       ReportType = "damaged"
	ReportMissing       ReportType = "missing"
	ReportIncorrectInfo ReportType = "incorrect_info"
	ReportOther         ReportType = "other"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportDamaged, ReportMissing, ReportIncorrectInfo, ReportOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportPending       ReportStatus = "pending"
	ReportInvestigating ReportStatus = "investigating"
	ReportResolved      ReportStatus = "resolved"
	ReportRejected      ReportStatus = "rejected"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportInvestigating, ReportResolved, ReportRejected:
		return true
	}
	return false
}

// Report is a user submission describing a problem with one Aed. Creating a
// report against a valid aed_id flags that record as a side effect.
type Report struct {
	ID            int64        `json:"id"`
	AedID         int64        `json:"aed_id"`
	ReportType    ReportType   `json:"report_type"`
	Description   string       `json:"description"`
	ReporterName  *string      `json:"reporter_name"`
	ReporterEmail *string      `json:"reporter_email"`
	ReporterPhone *string      `json:"reporter_phone"`
	CreatedAt     string       `json:"created_at"`
	Status        ReportStatus `json:"status"`
}

type CreateReportRequest struct {
	ReportType    ReportType `json:"report_type" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	ReporterName  *string    `json:"reporter_name" validate:"omitempty,max=200"`
	ReporterEmail *string    `json:"reporter_email" validate:"omitempty,email"`
	ReporterPhone *string    `json:"reporter_phone" validate:"omitempty,max=40"`
}

type ListReportsRequest struct {
	Type   ReportType   `json:"report_type"`
	Status ReportStatus `json:"status"`
	Offset int          `json:"offset" validate:"min=0"`
	Limit  int          `json:"limit" validate:"min=1,max=100"`
}
