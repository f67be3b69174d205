package breeze

import "encoding/json"

// Person is one profile record. A bare listing (details=false) carries only
// identity fields; a detailed listing adds Details (raw field values keyed by
// field id, shape depending on the field's type) and Family.
type Person struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name,omitempty"`
	NickName   string `json:"nick_name,omitempty"`
	Path       string `json:"path,omitempty"`

	Details map[string]json.RawMessage `json:"details,omitempty"`
	Family  []FamilyMember             `json:"family,omitempty"`
}

// FamilyMember links a person to a relative's record and their role in the
// family (Spouse, Child, ...). Details is a full person record.
type FamilyMember struct {
	PersonID string  `json:"person_id,omitempty"`
	RoleName string  `json:"role_name,omitempty"`
	Details  *Person `json:"details,omitempty"`
}

// Section groups profile field definitions under a named heading, in the
// order the account displays them.
type Section struct {
	SectionID string      `json:"section_id,omitempty"`
	Name      string      `json:"name"`
	Fields    []FieldSpec `json:"fields"`
}

// FieldSpec describes one profile question.
type FieldSpec struct {
	FieldID          string `json:"field_id"`
	ProfileSectionID string `json:"profile_section_id,omitempty"`
	FieldType        string `json:"field_type"`
	Name             string `json:"name"`
}

// FieldUpdate is one element of the fields_json payload accepted by the
// person add/update calls.
type FieldUpdate struct {
	FieldID   string `json:"field_id"`
	FieldType string `json:"field_type"`
	Response  any    `json:"response"`
	Details   any    `json:"details,omitempty"`
}

type Calendar struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Event struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id,omitempty"`
	Name        string `json:"name"`
	CategoryID  string `json:"category_id,omitempty"`
	StartsOn    string `json:"start_datetime,omitempty"`
	EndsOn      string `json:"end_datetime,omitempty"`
	Description string `json:"description,omitempty"`
	IsModified  string `json:"is_modified,omitempty"`
}

// Contribution is one payment as returned by the contribution listing. Breeze
// reports amounts as decimal strings; they are passed through untouched.
type Contribution struct {
	ID           string             `json:"id"`
	PaidOn       string             `json:"paid_on,omitempty"`
	PersonID     string             `json:"person_id,omitempty"`
	Amount       string             `json:"amount,omitempty"`
	MethodID     string             `json:"method_id,omitempty"`
	Method       string             `json:"method,omitempty"`
	BatchName    string             `json:"batch_name,omitempty"`
	BatchNumber  string             `json:"batch,omitempty"`
	Note         string             `json:"note,omitempty"`
	FirstName    string             `json:"first_name,omitempty"`
	LastName     string             `json:"last_name,omitempty"`
	Funds        []ContributionFund `json:"funds,omitempty"`
	EnvelopeNumb string             `json:"envelope_number,omitempty"`
}

// ContributionFund is one fund split within a contribution.
type ContributionFund struct {
	ID     string `json:"id,omitempty"`
	FundID string `json:"fund_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Amount string `json:"amount,omitempty"`
}

type Fund struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TaxDeductible string `json:"tax_deductible,omitempty"`
	IsDefault     string `json:"is_default,omitempty"`
	Archived      string `json:"archived,omitempty"`
	CreatedOn     string `json:"created_on,omitempty"`
	Total         string `json:"total,omitempty"`
}

type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	CreatedOn string `json:"created_on,omitempty"`
}

type Pledge struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id,omitempty"`
	PersonID   string `json:"person_id,omitempty"`
	Amount     string `json:"amount,omitempty"`
	StartedOn  string `json:"started_on,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
}

type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on,omitempty"`
	FolderID  string `json:"folder_id,omitempty"`
}

type TagFolder struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent_id,omitempty"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on,omitempty"`
}

// FormEntry is one submission of a form. Response values are keyed by form
// field id and vary in shape, so they are left raw for the caller.
type FormEntry struct {
	ID        string                     `json:"id"`
	FormID    string                     `json:"form_id"`
	CreatedOn string                     `json:"created_on,omitempty"`
	PersonID  string                     `json:"person_id,omitempty"`
	Response  map[string]json.RawMessage `json:"response,omitempty"`
}

type AccountSummary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Subdomain string         `json:"subdomain"`
	Status    string         `json:"status,omitempty"`
	CreatedOn string         `json:"created_on,omitempty"`
	Details   AccountDetails `json:"details,omitempty"`
}

type AccountDetails struct {
	Timezone string  `json:"timezone,omitempty"`
	Country  Country `json:"country,omitempty"`
}

type Country struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Abbreviation   string `json:"abbreviation,omitempty"`
	Currency       string `json:"currency,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
	DateFormat     string `json:"date_format,omitempty"`
}
