package types

// EducationLevel is an ordinal rank of degree seniority. Both résumé
// education and job requirements are reduced to this scale so they can be
// compared directly.
type EducationLevel int

// Education levels ordered from no formal degree to doctorate.
const (
	LevelNone      EducationLevel = 0
	LevelAssociate EducationLevel = 1
	LevelBachelor  EducationLevel = 2
	LevelMaster    EducationLevel = 3
	LevelDoctorate EducationLevel = 4
)

// String returns a human-readable name for the level.
func (l EducationLevel) String() string {
	switch l {
	case LevelAssociate:
		return "associate"
	case LevelBachelor:
		return "bachelor"
	case LevelMaster:
		return "master"
	case LevelDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

// DegreeName returns the display name used in strengths bullets,
// e.g. "a Master's degree".
func (l EducationLevel) DegreeName() string {
	switch l {
	case LevelAssociate:
		return "an Associate degree"
	case LevelBachelor:
		return "a Bachelor's degree"
	case LevelMaster:
		return "a Master's degree"
	case LevelDoctorate:
		return "a Doctorate"
	default:
		return ""
	}
}
