package reportsvc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/school"
)

// unknownPlaceholder is what a dangling student/class reference renders as;
// broken references are display noise, not errors.
const unknownPlaceholder = "Unknown"

// Service renders role-visible data as spreadsheets. Everything read goes
// through the caller's Scope, so an exported sheet can never contain rows the
// caller could not list.
type Service struct {
	repo school.Repository
}

func NewService(repo school.Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) studentName(id string) string {
	if s, err := svc.repo.GetStudentByID(id); err == nil {
		return s.Name
	}
	return unknownPlaceholder
}

func (svc *Service) className(id string) string {
	if c, err := svc.repo.GetClassByID(id); err == nil {
		return c.Name
	}
	return unknownPlaceholder
}

// WriteAttendance writes the scope's visible attendance records, optionally
// narrowed by filter, as one xlsx sheet.
func (svc *Service) WriteAttendance(w io.Writer, scope *school.Scope, filter school.AttendanceFilter) error {
	records, err := scope.Attendance()
	if err != nil {
		return err
	}
	records = school.FilterAttendance(records, filter)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Attendance"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}
	headers := []string{"Date", "Student", "Class", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}
	for row, rec := range records {
		values := []interface{}{rec.Date, svc.studentName(rec.StudentID), svc.className(rec.ClassID), rec.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(err, "writing row")
			}
		}
	}
	return errors.Wrap(f.Write(w), "writing workbook")
}

// WriteGrades writes the scope's visible grades, optionally narrowed by
// filter, as one xlsx sheet with a per-row percentage column.
func (svc *Service) WriteGrades(w io.Writer, scope *school.Scope, filter school.GradeFilter) error {
	grades, err := scope.Grades()
	if err != nil {
		return err
	}
	grades = school.FilterGrades(grades, filter)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Grades"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}
	headers := []string{"Date", "Student", "Class", "Type", "Score", "Max Score", "Percent"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}
	for row, g := range grades {
		values := []interface{}{
			g.Date, svc.studentName(g.StudentID), svc.className(g.ClassID), g.Type,
			g.Score, g.MaxScore, fmt.Sprintf("%d%%", school.Percent(g)),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(err, "writing row")
			}
		}
	}
	return errors.Wrap(f.Write(w), "writing workbook")
}
