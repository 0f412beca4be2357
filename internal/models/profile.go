// Package models defines the data structures shared across the matching engine.
package models

// Gender is the profile gender. Matching always pairs opposite genders.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Opposite returns the gender a seeker is matched against.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// Qualification is the education tier of a profile.
type Qualification string

const (
	QualificationSchool  Qualification = "School"
	QualificationDiploma Qualification = "Diploma"
	QualificationUG      Qualification = "UG"
	QualificationPG      Qualification = "PG"
	QualificationPHD     Qualification = "PHD"
	QualificationDoctor  Qualification = "Doctor"
)

// Qualifications enumerates the valid education tiers.
var Qualifications = []Qualification{
	QualificationSchool,
	QualificationDiploma,
	QualificationUG,
	QualificationPG,
	QualificationPHD,
	QualificationDoctor,
}

// Region is one of the fixed location codes profiles are tagged with.
type Region string

const (
	RegionChennai     Region = "Chennai"
	RegionCoimbatore  Region = "Coimbatore"
	RegionMadurai     Region = "Madurai"
	RegionTrichy      Region = "Trichy"
	RegionSalem       Region = "Salem"
	RegionTirunelveli Region = "Tirunelveli"
	RegionThanjavur   Region = "Thanjavur"
	RegionOverseas    Region = "Overseas"
)

// Regions enumerates the valid region codes.
var Regions = []Region{
	RegionChennai,
	RegionCoimbatore,
	RegionMadurai,
	RegionTrichy,
	RegionSalem,
	RegionTirunelveli,
	RegionThanjavur,
	RegionOverseas,
}

// Profile is one matrimonial profile from the snapshot. BirthDate is kept in
// its raw form; the pipeline derives Age and leaves it nil when the date does
// not parse.
type Profile struct {
	ID            string        `json:"id"`
	SerialNumber  string        `json:"serialNumber"`
	Name          string        `json:"name,omitempty"`
	Gender        Gender        `json:"gender"`
	NakshatraID   int           `json:"nakshatraId"`
	RasiLagnam    string        `json:"rasiLagnam,omitempty"`
	Gothram       string        `json:"gothram,omitempty"`
	BirthDate     string        `json:"birthDate,omitempty"`
	Region        Region        `json:"region,omitempty"`
	Qualification Qualification `json:"qualification,omitempty"`
	MonthlyIncome *float64      `json:"monthlyIncome,omitempty"`
	IsRemarried   bool          `json:"isRemarried"`
	Age           *int          `json:"age,omitempty"`
}
