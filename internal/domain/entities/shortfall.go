package entities

// ShortfallGroup is a set of unfilled shift slots (PPC) for one installation
// and shift-time window. Read-only external fact.
type ShortfallGroup struct {
	InstallationRole string
	Shift            string
	Workday          string
	TimeIn           string
	TimeOut          string
	Schedule         string
	Count            int64
}
