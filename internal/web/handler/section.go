package handler

// Section identifies one admin panel section. The admin shell used to
// select sections by string tag; the typed enum makes adding a section a
// compile-time checked extension instead of a string-keyed fallthrough.
type Section uint8

// Admin panel sections.
const (
	SectionDashboard Section = iota
	SectionAbout
	SectionSkills
	SectionProjects
	SectionClients
	SectionContact
	SectionMessages
	SectionSettings
)

// Sections lists every admin section in display order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionAbout,
		SectionSkills,
		SectionProjects,
		SectionClients,
		SectionContact,
		SectionMessages,
		SectionSettings,
	}
}

// String returns the section's route tag.
func (s Section) String() string {
	switch s {
	case SectionDashboard:
		return "dashboard"
	case SectionAbout:
		return "about"
	case SectionSkills:
		return "skills"
	case SectionProjects:
		return "projects"
	case SectionClients:
		return "clients"
	case SectionContact:
		return "contact"
	case SectionMessages:
		return "messages"
	case SectionSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Title returns the section's display title.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionClients:
		return "Clients"
	case SectionContact:
		return "Contact"
	case SectionMessages:
		return "Messages"
	case SectionSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}
