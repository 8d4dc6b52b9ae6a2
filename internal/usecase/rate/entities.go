package rate

import "encoding/json"

// Breakdown is the itemized rate computed for one application. The exact
// object is persisted verbatim as the frozen rate snapshot; later config
// changes never alter it.
type Breakdown struct {
	BaseRate        float64 `json:"base_rate"`
	TenureYears     float64 `json:"tenure_years"`
	AttendanceCount int     `json:"attendance_count"`
	AttendanceBonus float64 `json:"attendance_bonus"`
	EmergencyBonus  float64 `json:"emergency_bonus"`
	CeilingApplied  bool    `json:"ceiling_applied"`
	Total           float64 `json:"total"`
}

// JSON renders the snapshot stored on the application row.
func (b *Breakdown) JSON() string {
	buf, _ := json.Marshal(b)
	return string(buf)
}
