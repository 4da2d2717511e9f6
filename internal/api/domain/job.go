package domain

// Job type values accepted by the API. The set mirrors the jobs table enum.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"
)

// JobTypes lists every accepted job type
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
	JobTypeRemote,
}

// IsValidJobType reports whether t is one of the accepted job types
func IsValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}
