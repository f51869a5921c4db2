package types

// ------------------------------
// Response Types
// ------------------------------

// Wrapper keys under which the API nests each resource.
const (
	KeyTimeEntry      = "time_entry"
	KeyTimeEntryGroup = "time_entry_group"
	KeyCustomer       = "customer"
	KeyProject        = "project"
	KeyService        = "service"
	KeyUser           = "user"
	KeyAccount        = "account"
)

// TimeEntryList is the result of a time entry listing. Ungrouped listings
// fill Entries, listings with group_by fill Groups.
type TimeEntryList struct {
	Entries []TimeEntry      `json:"entries,omitempty"`
	Groups  []TimeEntryGroup `json:"groups,omitempty"`
}
