package model

import "encoding/json"

// Icon names a display glyph. The set is closed; unknown names resolve to IconBookOpen.
type Icon string

const (
	IconClock     Icon = "Clock"
	IconHistory   Icon = "History"
	IconGitBranch Icon = "GitBranch"
	IconRepeat    Icon = "Repeat"
	IconPlane     Icon = "Plane"
	IconBriefcase Icon = "Briefcase"
	IconPuzzle    Icon = "Puzzle"
	IconUtensils  Icon = "Utensils"
	IconNewspaper Icon = "Newspaper"
	IconBookOpen  Icon = "BookOpen"
	IconFileText  Icon = "FileText"
	IconMail      Icon = "Mail"
	IconLink      Icon = "Link"
	IconShield    Icon = "Shield"
	IconCrown     Icon = "Crown"
	IconZap       Icon = "Zap"
	IconTarget    Icon = "Target"
	IconCalendar  Icon = "Calendar"
	IconAward     Icon = "Award"
	IconMedal     Icon = "Medal"
	IconBrain     Icon = "Brain"
)

const DefaultIcon = IconBookOpen

var knownIcons = map[Icon]struct{}{
	IconClock: {}, IconHistory: {}, IconGitBranch: {}, IconRepeat: {}, IconPlane: {},
	IconBriefcase: {}, IconPuzzle: {}, IconUtensils: {}, IconNewspaper: {}, IconBookOpen: {},
	IconFileText: {}, IconMail: {}, IconLink: {}, IconShield: {}, IconCrown: {},
	IconZap: {}, IconTarget: {}, IconCalendar: {}, IconAward: {}, IconMedal: {}, IconBrain: {},
}

// ParseIcon maps a stored name onto the registry.
func ParseIcon(name string) Icon {
	if icon := Icon(name); icon.Valid() {
		return icon
	}
	return DefaultIcon
}

func (i Icon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*i = ParseIcon(name)
	return nil
}
