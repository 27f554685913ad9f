package mocks

import (
	"context"
	"sort"

	"github.com/course-authoring-api/internal/models"
)

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	Courses     map[string]*models.Course
	Curriculum  *MockCurriculumRepository
	InsertError error
	CreateCalls int
	Translated  map[string]*models.TranslationCourseOutput
}

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{
		Courses:    make(map[string]*models.Course),
		Translated: make(map[string]*models.TranslationCourseOutput),
	}
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Courses[course.ID] = course
	return nil
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return m.Courses[id], nil
}

func (m *MockCourseRepository) GetWithCurriculum(ctx context.Context, id string) (*models.CourseWithCurriculum, error) {
	course := m.Courses[id]
	if course == nil {
		return nil, nil
	}
	weeks := []*models.CourseWeekWithContent{}
	if m.Curriculum != nil {
		var err error
		weeks, err = m.Curriculum.GetCurriculum(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return &models.CourseWithCurriculum{Course: *course, Weeks: weeks}, nil
}

func (m *MockCourseRepository) List(ctx context.Context, status string) ([]*models.Course, error) {
	var courses []*models.Course
	for _, c := range m.Courses {
		if status == "" || string(c.Status) == status {
			courses = append(courses, c)
		}
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})
	return courses, nil
}

func (m *MockCourseRepository) UpdateStatus(ctx context.Context, id string, status models.CourseStatus) error {
	if course, ok := m.Courses[id]; ok {
		course.Status = status
	}
	return nil
}

func (m *MockCourseRepository) UpdateTranslation(ctx context.Context, id string, t *models.TranslationCourseOutput) error {
	m.Translated[id] = t
	if course, ok := m.Courses[id]; ok {
		title := t.TitleJP
		course.TitleJP = &title
		course.DescriptionJP = t.DescriptionJP
		course.OutcomesJP = t.OutcomesJP
	}
	return nil
}

func (m *MockCourseRepository) Count(ctx context.Context) (int, error) {
	return len(m.Courses), nil
}

// MockCurriculumRepository is a mock implementation of CurriculumRepository
type MockCurriculumRepository struct {
	Weeks       map[string]*models.CourseWeek     // by week id
	Sessions    map[string][]*models.CourseSession // by week id
	Assignments map[string][]*models.CourseAssignment
	Vocabulary  map[string][]*models.CourseVocabulary
	Resources   map[string][]*models.CourseResource

	CreateWeekFunc          func(ctx context.Context, week *models.CourseWeek) error
	SessionInsertError      error
	AssignmentInsertError   error
	VocabularyInsertError   error
	ResourceInsertError     error
	TranslatedWeekIDs       []string
	TranslatedSessionIDs    []string
	TranslatedAssignmentIDs []string
}

func NewMockCurriculumRepository() *MockCurriculumRepository {
	return &MockCurriculumRepository{
		Weeks:       make(map[string]*models.CourseWeek),
		Sessions:    make(map[string][]*models.CourseSession),
		Assignments: make(map[string][]*models.CourseAssignment),
		Vocabulary:  make(map[string][]*models.CourseVocabulary),
		Resources:   make(map[string][]*models.CourseResource),
	}
}

func (m *MockCurriculumRepository) CreateWeek(ctx context.Context, week *models.CourseWeek) error {
	if m.CreateWeekFunc != nil {
		if err := m.CreateWeekFunc(ctx, week); err != nil {
			return err
		}
	}
	m.Weeks[week.ID] = week
	return nil
}

func (m *MockCurriculumRepository) BatchInsertSessions(ctx context.Context, sessions []*models.CourseSession) (int, error) {
	if m.SessionInsertError != nil {
		return 0, m.SessionInsertError
	}
	for _, s := range sessions {
		m.Sessions[s.WeekID] = append(m.Sessions[s.WeekID], s)
	}
	return len(sessions), nil
}

func (m *MockCurriculumRepository) BatchInsertAssignments(ctx context.Context, assignments []*models.CourseAssignment) (int, error) {
	if m.AssignmentInsertError != nil {
		return 0, m.AssignmentInsertError
	}
	for _, a := range assignments {
		m.Assignments[a.WeekID] = append(m.Assignments[a.WeekID], a)
	}
	return len(assignments), nil
}

func (m *MockCurriculumRepository) BatchInsertVocabulary(ctx context.Context, vocabulary []*models.CourseVocabulary) (int, error) {
	if m.VocabularyInsertError != nil {
		return 0, m.VocabularyInsertError
	}
	for _, v := range vocabulary {
		m.Vocabulary[v.WeekID] = append(m.Vocabulary[v.WeekID], v)
	}
	return len(vocabulary), nil
}

func (m *MockCurriculumRepository) BatchInsertResources(ctx context.Context, resources []*models.CourseResource) (int, error) {
	if m.ResourceInsertError != nil {
		return 0, m.ResourceInsertError
	}
	for _, r := range resources {
		m.Resources[r.WeekID] = append(m.Resources[r.WeekID], r)
	}
	return len(resources), nil
}

func (m *MockCurriculumRepository) GetCurriculum(ctx context.Context, courseID string) ([]*models.CourseWeekWithContent, error) {
	var weeks []*models.CourseWeekWithContent
	for _, w := range m.Weeks {
		if w.CourseID != courseID {
			continue
		}
		entry := &models.CourseWeekWithContent{
			CourseWeek:  *w,
			Sessions:    m.Sessions[w.ID],
			Assignments: m.Assignments[w.ID],
			Vocabulary:  m.Vocabulary[w.ID],
			Resources:   m.Resources[w.ID],
		}
		if entry.Sessions == nil {
			entry.Sessions = []*models.CourseSession{}
		}
		if entry.Assignments == nil {
			entry.Assignments = []*models.CourseAssignment{}
		}
		if entry.Vocabulary == nil {
			entry.Vocabulary = []*models.CourseVocabulary{}
		}
		if entry.Resources == nil {
			entry.Resources = []*models.CourseResource{}
		}
		weeks = append(weeks, entry)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})
	return weeks, nil
}

func (m *MockCurriculumRepository) UpdateWeekTranslation(ctx context.Context, id string, t *models.TranslationWeekOutput) error {
	m.TranslatedWeekIDs = append(m.TranslatedWeekIDs, id)
	if week, ok := m.Weeks[id]; ok {
		title := t.TitleJP
		week.TitleJP = &title
		week.SubtitleJP = t.SubtitleJP
		week.DescriptionJP = t.DescriptionJP
	}
	return nil
}

func (m *MockCurriculumRepository) UpdateSessionTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error {
	m.TranslatedSessionIDs = append(m.TranslatedSessionIDs, id)
	for _, sessions := range m.Sessions {
		for _, s := range sessions {
			if s.ID == id {
				title := t.TitleJP
				s.TitleJP = &title
				s.DescriptionJP = t.DescriptionJP
			}
		}
	}
	return nil
}

func (m *MockCurriculumRepository) UpdateAssignmentTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error {
	m.TranslatedAssignmentIDs = append(m.TranslatedAssignmentIDs, id)
	for _, assignments := range m.Assignments {
		for _, a := range assignments {
			if a.ID == id {
				title := t.TitleJP
				a.TitleJP = &title
				a.DescriptionJP = t.DescriptionJP
			}
		}
	}
	return nil
}

// MockUploadRepository is a mock implementation of UploadRepository
type MockUploadRepository struct {
	Uploads     map[string]*models.CourseUpload
	InsertError error
}

func NewMockUploadRepository() *MockUploadRepository {
	return &MockUploadRepository{
		Uploads: make(map[string]*models.CourseUpload),
	}
}

func (m *MockUploadRepository) Create(ctx context.Context, upload *models.CourseUpload) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Uploads[upload.ID] = upload
	return nil
}

func (m *MockUploadRepository) GetByID(ctx context.Context, id string) (*models.CourseUpload, error) {
	return m.Uploads[id], nil
}

func (m *MockUploadRepository) List(ctx context.Context) ([]*models.CourseUpload, error) {
	var uploads []*models.CourseUpload
	for _, u := range m.Uploads {
		uploads = append(uploads, u)
	}
	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})
	return uploads, nil
}

func (m *MockUploadRepository) MarkParsed(ctx context.Context, id string, parsedJSON string) error {
	if upload, ok := m.Uploads[id]; ok {
		upload.Status = models.UploadStatusParsed
		upload.ParsedJSON = &parsedJSON
		upload.ErrorMessage = nil
	}
	return nil
}

func (m *MockUploadRepository) MarkConfirmed(ctx context.Context, id string, courseID string) error {
	if upload, ok := m.Uploads[id]; ok {
		upload.Status = models.UploadStatusConfirmed
		upload.CourseID = &courseID
	}
	return nil
}

func (m *MockUploadRepository) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	if upload, ok := m.Uploads[id]; ok {
		upload.Status = models.UploadStatusFailed
		upload.ErrorMessage = &errorMessage
	}
	return nil
}
