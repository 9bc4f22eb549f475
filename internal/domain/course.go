package domain

import "strings"

// Course is one catalog entry. ID is the normalized course code and the
// catalog key; Prerequisites keep source order and may contain duplicates.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string
}

// Summary renders the course as "<ID>, <Title>".
func (c Course) Summary() string {
	return c.ID + ", " + c.Title
}

// PrerequisiteLine renders the prerequisite list for display, "None" when empty.
func (c Course) PrerequisiteLine() string {
	if len(c.Prerequisites) == 0 {
		return "None"
	}
	return strings.Join(c.Prerequisites, ", ")
}
