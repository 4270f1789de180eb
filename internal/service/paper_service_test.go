package service

import (
	"testing"

	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaperService(paperRepo *fakePaperRepo, questionRepo *fakeQuestionRepo, attemptRepo *fakeAttemptRepo, courseRepo *fakeCourseRepo) PaperService {
	return NewPaperService(paperRepo, questionRepo, attemptRepo, courseRepo, NewScorer())
}

func paperQuestion(id, courseID, paperID uint) model.Question {
	q := poolQuestion(id, courseID, false)
	q.PaperID = &paperID
	return q
}

func TestCreatePaperCourseNotFound(t *testing.T) {
	svc := newPaperService(&fakePaperRepo{}, &fakeQuestionRepo{}, &fakeAttemptRepo{}, &fakeCourseRepo{})

	_, err := svc.CreatePaper(dto.CreatePaperRequest{CourseID: 9, Year: 2024, Title: "March session"})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreatePaper(t *testing.T) {
	courseRepo := &fakeCourseRepo{courses: []model.Course{{ID: 3, Name: "Physics"}}}
	paperRepo := &fakePaperRepo{}
	svc := newPaperService(paperRepo, &fakeQuestionRepo{}, &fakeAttemptRepo{}, courseRepo)

	resp, err := svc.CreatePaper(dto.CreatePaperRequest{CourseID: 3, Year: 2024, Title: "March session"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.CourseID)
	assert.Equal(t, 2024, resp.Year)
	require.Len(t, paperRepo.papers, 1)
}

func TestGetPapersForCourseNewestYearFirst(t *testing.T) {
	paperRepo := &fakePaperRepo{papers: []model.Paper{
		{ID: 1, CourseID: 3, Year: 2022, Title: "2022 session"},
		{ID: 2, CourseID: 3, Year: 2024, Title: "2024 session"},
		{ID: 3, CourseID: 9, Year: 2025, Title: "other course"},
	}}
	svc := newPaperService(paperRepo, &fakeQuestionRepo{}, &fakeAttemptRepo{}, &fakeCourseRepo{})

	papers, err := svc.GetPapersForCourse(3)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, 2024, papers[0].Year)
	assert.Equal(t, 2022, papers[1].Year)
}

func TestGetPaperQuestionsNotFound(t *testing.T) {
	svc := newPaperService(&fakePaperRepo{}, &fakeQuestionRepo{}, &fakeAttemptRepo{}, &fakeCourseRepo{})

	_, err := svc.GetPaperQuestions(404)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetPaperQuestionsReturnsFullSet(t *testing.T) {
	paperRepo := &fakePaperRepo{papers: []model.Paper{{ID: 7, CourseID: 3, Year: 2024, Title: "2024"}}}
	questionRepo := &fakeQuestionRepo{questions: []model.Question{
		paperQuestion(1, 3, 7),
		paperQuestion(2, 3, 7),
		poolQuestion(3, 3, false), // mock-pool question, not part of the paper
	}}
	svc := newPaperService(paperRepo, questionRepo, &fakeAttemptRepo{}, &fakeCourseRepo{})

	questions, err := svc.GetPaperQuestions(7)
	require.NoError(t, err)
	require.Len(t, questions, 2)
}

func TestSubmitPaperAttemptNotFound(t *testing.T) {
	svc := newPaperService(&fakePaperRepo{}, &fakeQuestionRepo{}, &fakeAttemptRepo{}, &fakeCourseRepo{})

	_, err := svc.SubmitAttempt(dto.SubmitPaperAttemptRequest{
		PaperID:   404,
		StudentID: 42,
		Answers:   []dto.AnswerDTO{{QuestionID: 1, SelectedOptionID: "A"}},
	})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSubmitPaperAttemptScoresAgainstPaperScope(t *testing.T) {
	paperRepo := &fakePaperRepo{papers: []model.Paper{{ID: 7, CourseID: 3, Year: 2024, Title: "2024"}}}
	questionRepo := &fakeQuestionRepo{questions: []model.Question{
		paperQuestion(1, 3, 7),
		paperQuestion(2, 3, 7),
		poolQuestion(3, 3, false),
	}}
	attemptRepo := &fakeAttemptRepo{}
	svc := newPaperService(paperRepo, questionRepo, attemptRepo, &fakeCourseRepo{})

	resp, err := svc.SubmitAttempt(dto.SubmitPaperAttemptRequest{
		PaperID:   7,
		StudentID: 42,
		Answers: []dto.AnswerDTO{
			{QuestionID: 1, SelectedOptionID: "A"},
			{QuestionID: 2, SelectedOptionID: "B"},
			{QuestionID: 3, SelectedOptionID: "A"}, // mock-pool question, outside the paper scope
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, uint(3), resp.CourseID, "course id comes from the paper")
	require.NotNil(t, resp.PaperID)
	assert.Equal(t, uint(7), *resp.PaperID)
	require.Len(t, attemptRepo.attempts, 1)
	assert.NotNil(t, attemptRepo.attempts[0].PaperID)
}

func TestPaperAttemptHistorySeparateFromMock(t *testing.T) {
	paperID := uint(7)
	attemptRepo := &fakeAttemptRepo{attempts: []model.Attempt{
		{ID: 1, StudentID: 42, CourseID: 3, PaperID: &paperID, Score: 5},
		{ID: 2, StudentID: 42, CourseID: 3, Score: 8}, // mock attempt
	}}
	svc := newPaperService(&fakePaperRepo{}, &fakeQuestionRepo{}, attemptRepo, &fakeCourseRepo{})

	attempts, err := svc.GetStudentAttempts(42)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, uint(1), attempts[0].ID)
}
