// Package preview renders a Markdown preview of a résumé record, mirroring
// what the form application shows on screen before the PDF download.
package preview

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Markdown renders the record as GitHub-flavored Markdown. The preview uses
// its own section order (education before skills before experience), matching
// the on-screen preview rather than the PDF layout.
func Markdown(record *types.ResumeRecord) string {
	var md strings.Builder

	fmt.Fprintf(&md, "### %s\n**%s**\n\n", record.Name, record.Title)

	contact := presentValues(
		record.Email,
		record.LinkedIn,
		record.GitHub,
		record.Phone,
		record.Location,
	)
	if len(contact) > 0 {
		md.WriteString(strings.Join(contact, " | ") + "\n\n")
	}

	if record.Summary != "" {
		md.WriteString(record.Summary + "\n\n")
	}

	if len(record.Education) > 0 {
		md.WriteString("**Education**\n\n")
		for i, edu := range record.Education {
			fmt.Fprintf(&md, "%d. **%s**, %s (%s - %s)  \n", i+1, edu.Degree, edu.University, edu.StartDate, edu.EndDate)
			if edu.CGPA != "" {
				fmt.Fprintf(&md, "CGPA: %s  \n", edu.CGPA)
			}
			if edu.Description != "" {
				fmt.Fprintf(&md, "%s  \n", edu.Description)
			}
			md.WriteString("\n")
		}
	}

	if len(record.Skills) > 0 {
		md.WriteString("**Skills**\n\n" + strings.Join(record.Skills, ", ") + "\n\n")
	}

	if len(record.Experience) > 0 {
		md.WriteString("**Experience**\n\n")
		for _, exp := range record.Experience {
			fmt.Fprintf(&md, "**%s** at %s  \n", exp.Title, exp.Company)
			fmt.Fprintf(&md, "*%s - %s*  \n", exp.StartDate, exp.EndDate)
			if exp.Description != "" {
				fmt.Fprintf(&md, "%s\n\n", exp.Description)
			}
		}
	}

	if len(record.Projects) > 0 {
		md.WriteString("**Projects**\n\n")
		for _, proj := range record.Projects {
			fmt.Fprintf(&md, "**%s** (%s - %s)  \n", proj.Title, proj.StartDate, proj.EndDate)
			fmt.Fprintf(&md, "**Company:** %s  \n", proj.Company)
			fmt.Fprintf(&md, "**Budget:** %s  \n", proj.Budget)
			fmt.Fprintf(&md, "**Project description:** %s\n\n", proj.Description)
		}
	}

	if len(record.Certificates) > 0 {
		md.WriteString("**Courses & Certificates**\n\n")
		for _, cert := range record.Certificates {
			fmt.Fprintf(&md, "**%s**  \n", cert.Title)
			fmt.Fprintf(&md, "%s  \n", cert.Organization)
			fmt.Fprintf(&md, "**Completion Date:** %s\n\n", cert.Date)
		}
	}

	if len(record.Languages) > 0 || len(record.Interests) > 0 {
		md.WriteString("**Additional Information**\n\n")
		if len(record.Languages) > 0 {
			fmt.Fprintf(&md, "**Languages:** %s\n\n", strings.Join(record.Languages, ", "))
		}
		if len(record.Interests) > 0 {
			fmt.Fprintf(&md, "**Interests:** %s\n\n", strings.Join(record.Interests, ", "))
		}
	}

	return md.String()
}

// presentValues filters out empty strings, preserving order.
func presentValues(values ...string) []string {
	present := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			present = append(present, v)
		}
	}
	return present
}
