// Package render produces the formatted résumé PDF from a ResumeRecord.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// pageBreakMargin is the bottom margin (mm) that triggers an automatic page break.
	pageBreakMargin = 15
	// ruleLeft and ruleRight are the x coordinates (mm) of section rules on A4.
	ruleLeft  = 10
	ruleRight = 200
)

// metadataDate pins the document's creation and modification dates so that
// identical records produce byte-identical output.
var metadataDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDF renders the record into a single paginated PDF document. Sections are
// emitted in a fixed order and only when their underlying data is non-empty
// (the Skills heading always prints, matching the reference layout). The
// record is not validated here; required entry sub-fields are the caller's
// contract (types.ResumeRecord.Validate).
func PDF(record *types.ResumeRecord) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(metadataDate)
	doc.SetModificationDate(metadataDate)
	doc.SetAutoPageBreak(true, pageBreakMargin)
	doc.AddPage()

	r := &renderer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	r.header(record)
	r.contactLine(record)
	r.summary(record.Summary)
	r.experience(record.Experience)
	r.education(record.Education)
	r.skillList(record.Skills)
	r.projects(record.Projects)
	r.certificates(record.Certificates)
	r.additionalInfo(record.Languages, record.Interests)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// renderer wraps the document with the cp1252 translator needed for the
// Helvetica core font.
type renderer struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// sectionHeading prints a bold heading followed by a full-width horizontal rule.
func (r *renderer) sectionHeading(title string) {
	r.doc.SetFont("Helvetica", "B", 14)
	r.doc.CellFormat(0, 10, title, "", 1, "", false, 0, "")
	y := r.doc.GetY()
	r.doc.SetDrawColor(0, 0, 0)
	r.doc.Line(ruleLeft, y, ruleRight, y)
	r.doc.Ln(2)
}

// header prints the candidate name in large bold uppercase, centered.
func (r *renderer) header(record *types.ResumeRecord) {
	r.doc.SetFont("Helvetica", "B", 22)
	r.doc.CellFormat(0, 5, r.tr(strings.ToUpper(record.Name)), "", 1, "C", false, 0, "")
	r.doc.Ln(2)
}

// contactLine prints a centered pipe-joined line of the present contact
// fields; the whole block is omitted when none are set.
func (r *renderer) contactLine(record *types.ResumeRecord) {
	r.doc.SetFont("Helvetica", "", 12)

	var contact []string
	if record.Email != "" {
		contact = append(contact, "Email: "+record.Email)
	}
	if record.LinkedIn != "" {
		contact = append(contact, "LinkedIn: "+record.LinkedIn)
	}
	if record.GitHub != "" {
		contact = append(contact, "GitHub: "+record.GitHub)
	}
	if record.Phone != "" {
		contact = append(contact, "Phone: "+record.Phone)
	}
	if record.Location != "" {
		contact = append(contact, "Location: "+record.Location)
	}

	if len(contact) > 0 {
		r.doc.MultiCell(0, 10, r.tr(strings.Join(contact, " | ")), "", "C", false)
		r.doc.Ln(10)
	}
}

func (r *renderer) summary(summary string) {
	if summary == "" {
		return
	}
	r.sectionHeading("Profile Summary")
	r.doc.SetFont("Helvetica", "", 12)
	r.doc.MultiCell(0, 8, r.tr(summary), "", "", false)
	r.doc.Ln(6)
}

func (r *renderer) experience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	r.sectionHeading("Experience")
	r.doc.SetFont("Helvetica", "", 12)
	for _, entry := range entries {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(0, 8, r.tr(entry.Title), "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "I", 12)
		r.doc.CellFormat(0, 6, r.tr("("+entry.StartDate+" - "+entry.EndDate+")"), "", 1, "R", false, 0, "")
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.CellFormat(0, 8, r.tr(entry.Company), "", 1, "", false, 0, "")
		if entry.Description != "" {
			r.doc.MultiCell(0, 6, r.tr(entry.Description), "", "", false)
		}
		r.doc.Ln(4)
	}
}

func (r *renderer) education(entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	r.sectionHeading("Education")
	r.doc.SetFont("Helvetica", "", 12)
	for _, entry := range entries {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(0, 8, r.tr(entry.Degree), "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "I", 12)
		r.doc.CellFormat(0, 8, r.tr("("+entry.StartDate+" - "+entry.EndDate+")"), "", 1, "R", false, 0, "")
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.CellFormat(0, 6, r.tr(entry.University), "", 1, "", false, 0, "")
		if entry.CGPA != "" {
			r.doc.CellFormat(0, 6, r.tr("CGPA/Percentage: "+entry.CGPA), "", 1, "", false, 0, "")
		}
		if entry.Description != "" {
			r.doc.MultiCell(0, 6, r.tr(entry.Description), "", "", false)
		}
		r.doc.Ln(4)
	}
}

// skillList prints the Skills section. Unlike the other sections the heading
// is emitted even when the list is empty, a parity quirk of the reference
// layout kept deliberately.
func (r *renderer) skillList(skillItems []string) {
	r.sectionHeading("Skills")
	if len(skillItems) > 0 {
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.MultiCell(0, 8, r.tr(strings.Join(skillItems, ", ")), "", "", false)
	}
	r.doc.Ln(4)
}

func (r *renderer) projects(entries []types.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	r.sectionHeading("Projects")
	for _, entry := range entries {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(0, 8, r.tr(entry.Title), "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "I", 11)
		r.doc.CellFormat(0, 8, r.tr("   "+entry.StartDate+" - "+entry.EndDate), "", 1, "R", false, 0, "")

		r.doc.SetFont("Helvetica", "", 12)
		if entry.Company != "" {
			r.doc.CellFormat(0, 6, r.tr("Company: "+entry.Company), "", 1, "", false, 0, "")
		}
		if entry.Budget != "" {
			r.doc.CellFormat(0, 6, r.tr("Budget: "+entry.Budget), "", 1, "", false, 0, "")
		}
		if entry.Description != "" {
			r.doc.MultiCell(0, 6, r.tr(entry.Description), "", "", false)
		}
		r.doc.Ln(4)
	}
}

func (r *renderer) certificates(entries []types.CertificateEntry) {
	if len(entries) == 0 {
		return
	}
	r.sectionHeading("Extra Courses & Certificates")
	r.doc.SetFont("Helvetica", "", 12)
	for _, entry := range entries {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(0, 8, r.tr(entry.Title), "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "I", 12)
		r.doc.CellFormat(0, 8, r.tr("("+entry.Date+")"), "", 1, "R", false, 0, "")
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.CellFormat(0, 4, r.tr(entry.Organization), "", 1, "", false, 0, "")
		r.doc.Ln(4)
	}
}

func (r *renderer) additionalInfo(languages, interests []string) {
	if len(languages) == 0 && len(interests) == 0 {
		return
	}
	r.sectionHeading("Additional Information")

	if len(languages) > 0 {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(25, 6, "Languages:", "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.CellFormat(0, 6, r.tr(strings.Join(languages, ", ")), "", 1, "", false, 0, "")
	}
	r.doc.Ln(1)
	if len(interests) > 0 {
		r.doc.SetFont("Helvetica", "B", 12)
		r.doc.CellFormat(20, 6, "Interests:", "", 0, "", false, 0, "")
		r.doc.SetFont("Helvetica", "", 12)
		r.doc.CellFormat(0, 6, r.tr(strings.Join(interests, ", ")), "", 1, "", false, 0, "")
	}
	r.doc.Ln(4)
}
