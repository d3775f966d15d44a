package usecase_test

import (
	"context"
	"sort"

	"github.com/fardannozami/oceanguard/internal/domain"
)

// mockUserRepo implements domain.UserRepository for testing
type mockUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := m.users[user.Username]; ok {
		return 0, domain.ErrUsernameTaken
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Username] = &stored
	return user.ID, nil
}

func (m *mockUserRepo) GetUserByCredentials(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	u, ok := m.users[username]
	if !ok || u.PasswordHash != passwordHash {
		return nil, nil
	}
	return u, nil
}

// mockReportRepo implements domain.ReportRepository for testing
type mockReportRepo struct {
	reports map[int64]*domain.Report
	nextID  int64
	err     error
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[int64]*domain.Report)}
}

func (m *mockReportRepo) AddReport(ctx context.Context, report *domain.Report) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	report.ID = m.nextID
	stored := *report
	m.reports[report.ID] = &stored
	return report.ID, nil
}

func (m *mockReportRepo) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reports[id], nil
}

func (m *mockReportRepo) GetAllReports(ctx context.Context) ([]*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*domain.Report
	for _, r := range m.reports {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockReportRepo) UpdateReport(ctx context.Context, report *domain.Report) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.reports[report.ID]; !ok {
		return domain.ErrReportNotFound
	}
	stored := *report
	m.reports[report.ID] = &stored
	return nil
}

func (m *mockReportRepo) DeleteReport(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.reports[id]; !ok {
		return domain.ErrReportNotFound
	}
	delete(m.reports, id)
	return nil
}
