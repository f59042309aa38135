package model

// FieldName is the stable key of a field descriptor.
type FieldName string

// Input keys submitted with a lead.
const (
	FieldFirstName             FieldName = "firstName"
	FieldLastName              FieldName = "lastName"
	FieldAddress               FieldName = "address"
	FieldCity                  FieldName = "city"
	FieldState                 FieldName = "state"
	FieldZip                   FieldName = "zip"
	FieldCountry               FieldName = "country"
	FieldPhoneNumber           FieldName = "phoneNumber"
	FieldEmail                 FieldName = "email"
	FieldGradYear              FieldName = "gradYear"
	FieldCampus                FieldName = "campus"
	FieldStartDate             FieldName = "startDate"
	FieldLevelOfEducation      FieldName = "levelOfEducation"
	FieldGPA                   FieldName = "gpa"
	FieldYearsOfWorkExperience FieldName = "yearsOfWorkExperience"
	FieldMilitary              FieldName = "military"
	FieldHasRNLicense          FieldName = "hasRnLicense"
	FieldDegreeInterest        FieldName = "degreeInterest"
	FieldProgramTrack          FieldName = "programTrack"
	FieldUndergradCompleted    FieldName = "undergradCompleted"
	FieldHasBSW                FieldName = "hasBsw"
	FieldHasBSN                FieldName = "hasBsn"
	FieldLeadShareOptIn        FieldName = "leadShareOptIn"
)

// Group and group label keys. These never carry submitted values.
const (
	GroupMilitary              FieldName = "militaryRadioGroup"
	GroupMilitaryLabel         FieldName = "militaryRadioGroupLabel"
	GroupHasRN                 FieldName = "hasRnRadioGroup"
	GroupHasRNLabel            FieldName = "hasRnRadioGroupLabel"
	GroupAssocDegree           FieldName = "assocDegreeRadioGroup"
	GroupAssocDegreeLabel      FieldName = "assocDegreeRadioGroupLabel"
	GroupGeneric               FieldName = "genericGroup"
	GroupGenericLabel          FieldName = "genericGroupLabel"
	GroupLevelOfEducation      FieldName = "levelOfEducation"
	GroupLevelOfEducationLabel FieldName = "levelOfEducationGroupLabel"
)

var knownFieldNames = map[FieldName]struct{}{
	FieldFirstName: {}, FieldLastName: {}, FieldAddress: {}, FieldCity: {},
	FieldState: {}, FieldZip: {}, FieldCountry: {}, FieldPhoneNumber: {},
	FieldEmail: {}, FieldGradYear: {}, FieldCampus: {}, FieldStartDate: {},
	FieldLevelOfEducation: {}, FieldGPA: {}, FieldYearsOfWorkExperience: {},
	FieldMilitary: {}, FieldHasRNLicense: {}, FieldDegreeInterest: {},
	FieldProgramTrack: {}, FieldUndergradCompleted: {}, FieldHasBSW: {},
	FieldHasBSN: {}, FieldLeadShareOptIn: {},
	GroupMilitary: {}, GroupMilitaryLabel: {}, GroupHasRN: {}, GroupHasRNLabel: {},
	GroupAssocDegree: {}, GroupAssocDegreeLabel: {}, GroupGeneric: {},
	GroupGenericLabel: {}, GroupLevelOfEducationLabel: {},
}

// Known reports whether the name belongs to the fixed key enumeration.
func (n FieldName) Known() bool {
	_, ok := knownFieldNames[n]
	return ok
}

func (n FieldName) String() string { return string(n) }

// Radio answer values shared by the yes/no style groups.
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerCurrent = "current"
)
