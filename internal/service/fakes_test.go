package service

import (
	"errors"
	"sort"
	"time"

	"github.com/prepmint/examcore/internal/model"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store unavailable")

// fakeQuestionRepo is an in-memory QuestionRepository with the same filtering
// semantics as the real one. failReads makes every call fail, for exercising
// the persistence-error paths.
type fakeQuestionRepo struct {
	questions []model.Question
	failReads bool
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	if f.failReads {
		return errStoreDown
	}
	q.ID = uint(len(f.questions) + 1)
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	for _, q := range f.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Question
	for _, q := range f.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindMockPool(courseID uint) ([]model.Question, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Question
	for _, q := range f.questions {
		if q.CourseID == courseID && q.PaperID == nil {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindAllByCourseID(courseID uint) ([]model.Question, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Question
	for _, q := range f.questions {
		if q.CourseID == courseID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindAllByPaperID(paperID uint) ([]model.Question, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Question
	for _, q := range f.questions {
		if q.PaperID != nil && *q.PaperID == paperID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) CorrectOptionsForCourse(courseID uint, ids []uint) (map[uint]model.OptionID, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	return f.correctOptions(ids, func(q model.Question) bool {
		return q.CourseID == courseID && q.PaperID == nil
	}), nil
}

func (f *fakeQuestionRepo) CorrectOptionsForPaper(paperID uint, ids []uint) (map[uint]model.OptionID, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	return f.correctOptions(ids, func(q model.Question) bool {
		return q.PaperID != nil && *q.PaperID == paperID
	}), nil
}

func (f *fakeQuestionRepo) correctOptions(ids []uint, match func(model.Question) bool) map[uint]model.OptionID {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make(map[uint]model.OptionID)
	for _, q := range f.questions {
		if want[q.ID] && match(q) {
			out[q.ID] = q.CorrectOptionID
		}
	}
	return out
}

type fakeAttemptRepo struct {
	attempts   []model.Attempt
	failCreate bool
}

func (f *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	if f.failCreate {
		return errStoreDown
	}
	attempt.ID = uint(len(f.attempts) + 1)
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	for _, a := range f.attempts {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindAllMockByStudent(studentID uint, startDate, endDate *time.Time) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.StudentID != studentID || a.PaperID != nil {
			continue
		}
		if startDate != nil && a.SubmittedAt.Before(*startDate) {
			continue
		}
		if endDate != nil && a.SubmittedAt.After(*endDate) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (f *fakeAttemptRepo) FindAllPaperByStudent(studentID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.StudentID == studentID && a.PaperID != nil {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

type fakePaperRepo struct {
	papers []model.Paper
}

func (f *fakePaperRepo) Create(paper *model.Paper) error {
	paper.ID = uint(len(f.papers) + 1)
	f.papers = append(f.papers, *paper)
	return nil
}

func (f *fakePaperRepo) FindByID(id uint) (*model.Paper, error) {
	for _, p := range f.papers {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaperRepo) FindAllByCourseID(courseID uint) ([]model.Paper, error) {
	var out []model.Paper
	for _, p := range f.papers {
		if p.CourseID == courseID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

type fakeCourseRepo struct {
	courses []model.Course
}

func (f *fakeCourseRepo) Create(course *model.Course) error {
	course.ID = uint(len(f.courses) + 1)
	f.courses = append(f.courses, *course)
	return nil
}

func (f *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) FindAll() ([]model.Course, error) {
	return append([]model.Course(nil), f.courses...), nil
}

func strPtr(s string) *string { return &s }

// poolQuestion builds a mock-pool question with options A/B/C, correct "A".
func poolQuestion(id, courseID uint, withImage bool) model.Question {
	q := model.Question{
		ID:           id,
		CourseID:     courseID,
		QuestionText: "question text",
		Options: model.OptionList{
			{ID: "A", Label: "first"},
			{ID: "B", Label: "second"},
			{ID: "C", Label: "third"},
		},
		CorrectOptionID: "A",
	}
	if withImage {
		q.ImageURL = strPtr("http://cdn.example.com/question-images/q.png")
	}
	return q
}
